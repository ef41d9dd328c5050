package intervalmap

import (
	"sort"

	"github.com/henderiw/intervaltable/pkg/interval"
)

// location is where an interval falls among the entries: either the run
// [first, last] of entries it overlaps, or the index it can be inserted at.
type location struct {
	first, last int
	overlap     bool
}

// locate finds the entries overlapping iv. Both searches rely on the entries
// being sorted and disjoint, which makes their upper boundaries ascend as
// well as their lower ones.
func (r *Map[B, V]) locate(iv interval.Interval[B]) location {
	n := len(r.entries)
	first := sort.Search(n, func(i int) bool {
		return !r.entries[i].Interval.EntirelyBefore(iv)
	})
	end := sort.Search(n, func(i int) bool {
		return iv.EntirelyBefore(r.entries[i].Interval)
	})
	if first >= end {
		return location{first: first, last: first}
	}
	return location{first: first, last: end - 1, overlap: true}
}

// split punches iv out of the entries. It returns the entries before iv and
// the entries after it, with the entries that partially overlap iv trimmed
// to their remainders. The returned slices never share a backing array with
// room to grow, so appending to them leaves r untouched.
func (r *Map[B, V]) split(iv interval.Interval[B]) (former, latter []Entry[B, V]) {
	loc := r.locate(iv)
	if !loc.overlap {
		return r.entries[:loc.first:loc.first], r.entries[loc.first:]
	}
	former = r.entries[:loc.first:loc.first]
	latter = r.entries[loc.last+1:]

	if loc.first == loc.last {
		target := r.entries[loc.first]
		left, right := target.Interval.Subtract(iv)
		switch {
		case !right.IsEmpty():
			// iv in the middle of target.
			//
			//      target
			// f-------------t
			//    f------t
			//       iv
			former = append(former, Entry[B, V]{Interval: left, Value: target.Value})
			latter = prepend(latter, Entry[B, V]{Interval: right, Value: target.Value})
		case left.IsEmpty():
			// iv covers target entirely.
		case left.Less(iv):
			// iv overlaps the end of target.
			//
			//   target
			// f------t
			//    f------t
			//       iv
			former = append(former, Entry[B, V]{Interval: left, Value: target.Value})
		default:
			// iv overlaps the start of target.
			//
			//       target
			//    f------t
			// f------t
			//    iv
			latter = prepend(latter, Entry[B, V]{Interval: left, Value: target.Value})
		}
		return former, latter
	}

	// iv spans several entries; the ones strictly between head and tail are
	// covered and dropped. Subtracting iv from head or tail leaves at most one
	// piece since iv runs past the far end of each.
	head, tail := r.entries[loc.first], r.entries[loc.last]
	if rest, _ := head.Interval.Subtract(iv); !rest.IsEmpty() {
		former = append(former, Entry[B, V]{Interval: rest, Value: head.Value})
	}
	if rest, _ := tail.Interval.Subtract(iv); !rest.IsEmpty() {
		latter = prepend(latter, Entry[B, V]{Interval: rest, Value: tail.Value})
	}
	return former, latter
}

func prepend[B, V any](entries []Entry[B, V], e Entry[B, V]) []Entry[B, V] {
	out := make([]Entry[B, V], 0, len(entries)+1)
	out = append(out, e)
	return append(out, entries...)
}
