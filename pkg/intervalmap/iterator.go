package intervalmap

import "github.com/henderiw/intervaltable/pkg/interval"

// Iterator walks a snapshot of a map's entries in interval order.
type Iterator[B, V any] struct {
	current int
	entries []Entry[B, V]
}

func (r *Iterator[B, V]) Entry() Entry[B, V] {
	return r.entries[r.current]
}

func (r *Iterator[B, V]) Interval() interval.Interval[B] {
	return r.entries[r.current].Interval
}

func (r *Iterator[B, V]) Value() V {
	return r.entries[r.current].Value
}

func (r *Iterator[B, V]) Next() bool {
	r.current++
	return r.current < len(r.entries)
}

// IsAdjacent returns whether the current entry starts right where the
// previous one stops.
func (r *Iterator[B, V]) IsAdjacent() bool {
	if r.current < 1 {
		return false
	}
	return r.entries[r.current-1].Interval.Adjacent(r.entries[r.current].Interval)
}

// Reset rewinds the iterator to before the first entry.
func (r *Iterator[B, V]) Reset() {
	r.current = -1
}
