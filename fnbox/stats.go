package fnbox

import (
	"github.com/fnbox/fnbox/fnbox/internal/vtable"
)

// RegistryStats counts the dispatch tables registered so far in this
// process, split by storage class.
type RegistryStats struct {
	Tables int
	Inline int
	Boxed  int
}

// Stats snapshots the dispatch-table registry. One table exists per concrete
// callable type ever bound; the numbers only grow. Diagnostics only.
func Stats() RegistryStats {
	s := vtable.Stats()
	return RegistryStats{
		Tables: s.Tables,
		Inline: s.Inline,
		Boxed:  s.Boxed,
	}
}
