package interval

// Compare orders r and o by lower boundary, then by upper boundary. No lower
// bound sorts first, no upper bound sorts last and the empty interval sorts
// after every other interval.
func (r Interval[B]) Compare(o Interval[B]) int {
	switch {
	case r.IsEmpty() && o.IsEmpty():
		return 0
	case r.IsEmpty():
		return 1
	case o.IsEmpty():
		return -1
	}
	compare := r.comparer(o)
	if c := compareBoundaries(compare, r.Lower(), o.Lower()); c != 0 {
		return c
	}
	return compareBoundaries(compare, r.Upper(), o.Upper())
}

func (r Interval[B]) Less(o Interval[B]) bool { return r.Compare(o) < 0 }

// Equal reports whether r and o describe the same set. All empty intervals
// are equal, whatever they were built from.
func (r Interval[B]) Equal(o Interval[B]) bool { return r.Compare(o) == 0 }

// EntirelyBefore returns whether r ends before o starts. Touching intervals
// such as [0,5) and [5,10) are entirely before one another.
func (r Interval[B]) EntirelyBefore(o Interval[B]) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return compareBoundaries(r.comparer(o), r.Upper(), o.Lower()) < 0
}

// Overlaps returns whether r and o share at least one position.
func (r Interval[B]) Overlaps(o Interval[B]) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return !r.EntirelyBefore(o) && !o.EntirelyBefore(r)
}

// CoveredBy returns whether r is entirely contained within o.
func (r Interval[B]) CoveredBy(o Interval[B]) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	compare := r.comparer(o)
	return compareBoundaries(compare, o.Lower(), r.Lower()) <= 0 &&
		compareBoundaries(compare, r.Upper(), o.Upper()) <= 0
}

// InMiddleOf returns whether r is inside o, but not touching the edges of o.
func (r Interval[B]) InMiddleOf(o Interval[B]) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	compare := r.comparer(o)
	return compareBoundaries(compare, o.Lower(), r.Lower()) < 0 &&
		compareBoundaries(compare, r.Upper(), o.Upper()) < 0
}

// OverlapsStartOf returns whether r overlaps the start of o, but not all of o.
func (r Interval[B]) OverlapsStartOf(o Interval[B]) bool {
	if !r.Overlaps(o) {
		return false
	}
	compare := r.comparer(o)
	return compareBoundaries(compare, r.Lower(), o.Lower()) <= 0 &&
		compareBoundaries(compare, r.Upper(), o.Upper()) < 0
}

// OverlapsEndOf returns whether r overlaps the end of o, but not all of o.
func (r Interval[B]) OverlapsEndOf(o Interval[B]) bool {
	if !r.Overlaps(o) {
		return false
	}
	compare := r.comparer(o)
	return compareBoundaries(compare, o.Lower(), r.Lower()) < 0 &&
		compareBoundaries(compare, o.Upper(), r.Upper()) <= 0
}

// Adjacent returns whether o starts exactly where r stops without a gap or
// an overlap, e.g. [0,5) and [5,10].
func (r Interval[B]) Adjacent(o Interval[B]) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return adjacent(r.comparer(o), r.Upper(), o.Lower())
}

// Intersection returns the positions shared by r and o.
func (r Interval[B]) Intersection(o Interval[B]) Interval[B] {
	compare := r.comparer(o)
	if !r.Overlaps(o) {
		return Interval[B]{compare: compare}
	}
	return fromBoundaries(compare,
		maxBoundary(compare, r.Lower(), o.Lower()),
		minBoundary(compare, r.Upper(), o.Upper()))
}

// Subtract removes o from r. The result holds up to two pieces:
//
//	o misses r          (r, empty)
//	o covers r          (empty, empty)
//	o trims one end     (remainder, empty)
//	o in middle of r    (left, right)
//
// Each remainder flips the inclusivity of the boundary it shares with o, so
// [0,10) minus [3,7) is ([0,3), [7,10)).
func (r Interval[B]) Subtract(o Interval[B]) (Interval[B], Interval[B]) {
	compare := r.comparer(o)
	empty := Interval[B]{compare: compare}
	if !r.Overlaps(o) {
		return r, empty
	}

	left, right := empty, empty
	if lower := o.Lower(); !lower.Infinite {
		left = fromBoundaries(compare, r.Lower(), lower.flip())
	}
	if upper := o.Upper(); !upper.Infinite {
		right = fromBoundaries(compare, upper.flip(), r.Upper())
	}
	if left.IsEmpty() {
		return right, empty
	}
	return left, right
}

// Concatenate joins r and o when they overlap or are adjacent, e.g. [0,5)
// and [5,10] give [0,10]. It returns ok == false otherwise.
func (r Interval[B]) Concatenate(o Interval[B]) (Interval[B], bool) {
	compare := r.comparer(o)
	if !r.Overlaps(o) && !r.Adjacent(o) && !o.Adjacent(r) {
		return Interval[B]{compare: compare}, false
	}
	return fromBoundaries(compare,
		minBoundary(compare, r.Lower(), o.Lower()),
		maxBoundary(compare, r.Upper(), o.Upper())), true
}
