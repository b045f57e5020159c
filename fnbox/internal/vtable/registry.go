package vtable

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	sharedHelper "github.com/fnbox/fnbox/shared/helper"
)

// The registry keeps the one canonical *Table per concrete type. Pointer
// identity is load-bearing: containers holding the same concrete type must
// see the same table so swap can take its same-type fast path. Lookups are
// hot on the bind path, so the cache is sharded by the type-name hash and
// each shard takes a read lock on the common case.

const numShards = 16

type shard struct {
	mu     sync.RWMutex
	tables map[reflect.Type]any
}

var shards = func() [numShards]*shard {
	var ss [numShards]*shard
	for i := range ss {
		ss[i] = &shard{tables: make(map[reflect.Type]any)}
	}
	return ss
}()

func shardOf(hash uint64) *shard {
	return shards[hash%numShards]
}

// For returns the canonical dispatch table for concrete type F, generating
// and registering it on first use. Safe for concurrent use; when two
// goroutines race on the first bind of a type, one table wins and the loser
// is discarded.
func For[P, R any, F Invoker[P, R]]() *Table[P, R] {
	goType := reflect.TypeFor[F]()
	s := shardOf(hash(goType.String()))

	if tbl, ok := sharedHelper.GetTypedValueOf2[*Table[P, R]](func() (any, bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		raw, ok := s.tables[goType]
		return raw, ok
	}); ok {
		return tbl
	}

	fresh := newTable[P, R, F]()

	s.mu.Lock()
	if raw, ok := s.tables[goType]; ok {
		s.mu.Unlock()
		return sharedHelper.MustGetTypedValue[*Table[P, R]](func() (any, error) {
			return raw, nil
		})
	}
	s.tables[goType] = fresh
	s.mu.Unlock()

	logger, _ := zap.NewProduction()
	logger.Sugar().Debugf(
		"registered dispatch table: tableId: %v, type: %v, storage: %v",
		fresh.ID, fresh.GoType, fresh.Storage(),
	)

	return fresh
}

// RegistryStats counts registered tables by storage class.
type RegistryStats struct {
	Tables int
	Inline int
	Boxed  int
}

type classed interface {
	inline() bool
}

func (t *Table[P, R]) inline() bool { return t.Inline }

// Stats snapshots the registry. Intended for diagnostics and tests, not hot
// paths.
func Stats() RegistryStats {
	var st RegistryStats
	for _, s := range shards {
		s.mu.RLock()
		for _, raw := range s.tables {
			st.Tables++
			if raw.(classed).inline() {
				st.Inline++
			} else {
				st.Boxed++
			}
		}
		s.mu.RUnlock()
	}
	return st
}
