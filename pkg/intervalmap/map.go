package intervalmap

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/henderiw/intervaltable/pkg/interval"
)

// EqualFunc reports whether two values are the same. A Map that has one
// joins touching intervals holding equal values on insert.
type EqualFunc[V any] func(a, b V) bool

// Map associates values with intervals of B. Every point maps to at most one
// value; a later Insert wins over the part of the domain it overlaps.
//
// A Map is not safe for concurrent mutation.
type Map[B, V any] struct {
	// entries are non-empty, sorted and do not overlap each other. The
	// backing array is never written in place except by SetValueAt.
	entries []Entry[B, V]
	equal   EqualFunc[V]
}

// New returns an empty map that never merges entries.
func New[B, V any]() *Map[B, V] {
	return &Map[B, V]{}
}

// NewComparable returns an empty map merging touching entries whose values
// are ==.
func NewComparable[B any, V comparable]() *Map[B, V] {
	return &Map[B, V]{equal: func(a, b V) bool { return a == b }}
}

// NewWithEqual returns an empty map merging touching entries whose values
// are equal according to equal. A nil equal disables merging.
func NewWithEqual[B, V any](equal EqualFunc[V]) *Map[B, V] {
	return &Map[B, V]{equal: equal}
}

// FromSorted builds a map from entries that are already sorted, non-empty
// and non-overlapping. The entries are copied and checked.
func FromSorted[B, V any](entries []Entry[B, V], equal EqualFunc[V]) (*Map[B, V], error) {
	r := &Map[B, V]{
		entries: slices.Clone(entries),
		equal:   equal,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// FromEntries inserts entries one by one in the given order, so later
// entries win where they overlap earlier ones. Entries with an empty
// interval are skipped and reported in the joined error.
func FromEntries[B, V any](equal EqualFunc[V], entries ...Entry[B, V]) (*Map[B, V], error) {
	r := NewWithEqual[B, V](equal)
	var errm error
	for _, e := range entries {
		if err := r.Insert(e.Value, e.Interval); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	return r, errm
}

// Validate checks that the entries are non-empty, sorted and do not overlap.
func (r *Map[B, V]) Validate() error {
	for i, e := range r.entries {
		if e.Interval.IsEmpty() {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyInterval)
		}
		if i == 0 {
			continue
		}
		prev := r.entries[i-1].Interval
		if prev.Overlaps(e.Interval) {
			return fmt.Errorf("entry %d %s and entry %d %s: %w", i-1, prev, i, e.Interval, ErrOverlap)
		}
		if !prev.Less(e.Interval) {
			return fmt.Errorf("entry %d %s and entry %d %s: %w", i-1, prev, i, e.Interval, ErrUnsorted)
		}
	}
	return nil
}

func (r *Map[B, V]) Len() int { return len(r.entries) }

// At returns the entry at position i in interval order.
func (r *Map[B, V]) At(i int) Entry[B, V] { return r.entries[i] }

// SetValueAt replaces the value of the entry at position i. The interval of
// the entry, and therefore its position, is left alone.
func (r *Map[B, V]) SetValueAt(i int, v V) error {
	if i < 0 || i >= len(r.entries) {
		return fmt.Errorf("set value at %d, len %d: %w", i, len(r.entries), ErrIndexOutOfRange)
	}
	r.entries[i].Value = v
	return nil
}

// Entries returns a copy of the entries in interval order.
func (r *Map[B, V]) Entries() Entries[B, V] {
	return slices.Clone(r.entries)
}

// All iterates over a snapshot of the entries taken when the loop starts.
func (r *Map[B, V]) All() iter.Seq2[interval.Interval[B], V] {
	return func(yield func(interval.Interval[B], V) bool) {
		for _, e := range slices.Clone(r.entries) {
			if !yield(e.Interval, e.Value) {
				return
			}
		}
	}
}

func (r *Map[B, V]) Iterate() *Iterator[B, V] {
	return &Iterator[B, V]{current: -1, entries: slices.Clone(r.entries)}
}

func (r *Map[B, V]) Clone() *Map[B, V] {
	return &Map[B, V]{
		entries: slices.Clone(r.entries),
		equal:   r.equal,
	}
}

// Equal reports whether both maps hold the same intervals with values equal
// according to eq.
func (r *Map[B, V]) Equal(o *Map[B, V], eq EqualFunc[V]) bool {
	return slices.EqualFunc(r.entries, o.entries, func(a, b Entry[B, V]) bool {
		return a.Interval.Equal(b.Interval) && eq(a.Value, b.Value)
	})
}

func (r *Map[B, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte('}')
	return b.String()
}

// Get returns the value of the interval containing p.
func (r *Map[B, V]) Get(p B) (V, bool) {
	e, ok := r.GetEntry(p)
	return e.Value, ok
}

// GetEntry returns the entry whose interval contains p.
func (r *Map[B, V]) GetEntry(p B) (Entry[B, V], bool) {
	if i, ok := r.index(p); ok {
		return r.entries[i], true
	}
	return Entry[B, V]{}, false
}

// IndexOf returns the position of the entry whose interval contains p.
func (r *Map[B, V]) IndexOf(p B) (int, bool) {
	return r.index(p)
}

// index binary searches the entry containing p over [lo, hi).
func (r *Map[B, V]) index(p B) (int, bool) {
	lo, hi := 0, len(r.entries)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch r.entries[mid].Interval.ComparePoint(p) {
		case 0:
			return mid, true
		case -1:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return lo, false
}

// Insert maps every point of iv to v, replacing what was there. With an
// EqualFunc set, the new entry is joined with the touching entry on its left
// and then with the one on its right when they hold an equal value.
func (r *Map[B, V]) Insert(v V, iv interval.Interval[B]) error {
	if iv.IsEmpty() {
		return fmt.Errorf("insert: %w", ErrEmptyInterval)
	}
	former, latter := r.split(iv)

	entries := make([]Entry[B, V], 0, len(former)+len(latter)+1)
	entries = append(entries, former...)
	entries = r.appendMerged(entries, Entry[B, V]{Interval: iv, Value: v})
	if len(latter) > 0 {
		entries = r.appendMerged(entries, latter[0])
		entries = append(entries, latter[1:]...)
	}
	r.entries = entries
	return nil
}

// appendMerged appends e, or widens the last entry to cover e when both hold
// equal values and their intervals touch.
func (r *Map[B, V]) appendMerged(entries []Entry[B, V], e Entry[B, V]) []Entry[B, V] {
	if r.equal == nil || len(entries) == 0 {
		return append(entries, e)
	}
	last := &entries[len(entries)-1]
	if !r.equal(last.Value, e.Value) {
		return append(entries, e)
	}
	joined, ok := last.Interval.Concatenate(e.Interval)
	if !ok {
		return append(entries, e)
	}
	last.Interval = joined
	return entries
}

// Remove unmaps every point of iv.
func (r *Map[B, V]) Remove(iv interval.Interval[B]) error {
	if iv.IsEmpty() {
		return fmt.Errorf("remove: %w", ErrEmptyInterval)
	}
	former, latter := r.split(iv)
	entries := make([]Entry[B, V], 0, len(former)+len(latter))
	entries = append(entries, former...)
	r.entries = append(entries, latter...)
	return nil
}

// Limited returns a new map holding only the parts of r that lie within iv.
func (r *Map[B, V]) Limited(iv interval.Interval[B]) *Map[B, V] {
	res := &Map[B, V]{equal: r.equal}
	if iv.IsEmpty() {
		return res
	}
	loc := r.locate(iv)
	if !loc.overlap {
		return res
	}
	res.entries = slices.Clone(r.entries[loc.first : loc.last+1])
	first, last := &res.entries[0], &res.entries[len(res.entries)-1]
	first.Interval = first.Interval.Intersection(iv)
	last.Interval = last.Interval.Intersection(iv)
	return res
}

// Gaps returns the parts of within that no entry covers, in order.
func (r *Map[B, V]) Gaps(within interval.Interval[B]) []interval.Interval[B] {
	if within.IsEmpty() {
		return nil
	}
	var gaps []interval.Interval[B]
	rest := within
	for _, e := range r.Limited(within).entries {
		before, after := rest.Subtract(e.Interval)
		switch {
		case !after.IsEmpty():
			gaps = append(gaps, before)
			rest = after
		case before.IsEmpty():
			rest = before
		case before.Less(e.Interval):
			gaps = append(gaps, before)
			rest = interval.Empty[B]()
		default:
			rest = before
		}
		if rest.IsEmpty() {
			break
		}
	}
	if !rest.IsEmpty() {
		gaps = append(gaps, rest)
	}
	return gaps
}
