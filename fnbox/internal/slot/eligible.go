package slot

import "reflect"

// Eligible reports whether values of type t may live in the inline region.
// Three conditions, checked once per concrete type when its dispatch table is
// built:
//
//   - the value fits: Sizeof(t) <= Size
//   - the region's alignment satisfies the type's: Align % Alignof(t) == 0
//   - the type is pointer-free, so the collector never needs to scan it
//
// The last condition is the Go-specific one. The inline region is plain
// bytes; a pointer parked there would be invisible to the collector and its
// referent could be reclaimed while still in use. Types that carry pointers
// (funcs, slices, maps, strings, ...) are boxed instead.
func Eligible(t reflect.Type) bool {
	return t.Size() <= Size &&
		Align%t.Align() == 0 &&
		pointerFree(t)
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Chan, Func, Interface, Map, Pointer, Slice, String, UnsafePointer.
		return false
	}
}
