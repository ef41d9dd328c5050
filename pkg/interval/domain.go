package interval

import "cmp"

// CompareFunc returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type CompareFunc[B any] func(a, b B) int

// Domain builds intervals over bounds ordered by a CompareFunc. Types with a
// Compare method, such as netip.Addr or time.Time, use their method
// expression: NewDomain(netip.Addr.Compare).
type Domain[B any] struct {
	compare CompareFunc[B]
}

func NewDomain[B any](compare CompareFunc[B]) Domain[B] {
	if compare == nil {
		panic("interval: nil compare func")
	}
	return Domain[B]{compare: compare}
}

// Ordered returns the domain of a type ordered by the < operator.
func Ordered[B cmp.Ordered]() Domain[B] {
	return Domain[B]{compare: cmp.Compare[B]}
}

func (d Domain[B]) Compare(a, b B) int { return d.compare(a, b) }

// CompareBoundaries orders two boundaries of any side on one line.
func (d Domain[B]) CompareBoundaries(a, b Boundary[B]) int {
	return compareBoundaries(d.compare, a, b)
}

func (d Domain[B]) Empty() Interval[B] { return Interval[B]{compare: d.compare} }

func (d Domain[B]) Unbounded() Interval[B] {
	return Interval[B]{kind: KindUnbounded, compare: d.compare}
}

// Closed returns [lo, hi].
func (d Domain[B]) Closed(lo, hi B) Interval[B] { return d.bounded(KindClosed, lo, hi) }

// Open returns (lo, hi).
func (d Domain[B]) Open(lo, hi B) Interval[B] { return d.bounded(KindOpen, lo, hi) }

// LeftOpen returns (lo, hi].
func (d Domain[B]) LeftOpen(lo, hi B) Interval[B] { return d.bounded(KindLeftOpen, lo, hi) }

// RightOpen returns [lo, hi), the conventional half-open interval.
func (d Domain[B]) RightOpen(lo, hi B) Interval[B] { return d.bounded(KindRightOpen, lo, hi) }

// From returns [lo, +inf).
func (d Domain[B]) From(lo B) Interval[B] {
	return Interval[B]{kind: KindFrom, lo: lo, compare: d.compare}
}

// GreaterThan returns (lo, +inf).
func (d Domain[B]) GreaterThan(lo B) Interval[B] {
	return Interval[B]{kind: KindGreaterThan, lo: lo, compare: d.compare}
}

// Through returns (-inf, hi].
func (d Domain[B]) Through(hi B) Interval[B] {
	return Interval[B]{kind: KindThrough, hi: hi, compare: d.compare}
}

// UpTo returns (-inf, hi).
func (d Domain[B]) UpTo(hi B) Interval[B] {
	return Interval[B]{kind: KindUpTo, hi: hi, compare: d.compare}
}

// FromBounds rebuilds the most specific interval spanning lower to upper.
// The Side of both boundaries is ignored.
func (d Domain[B]) FromBounds(lower, upper Boundary[B]) Interval[B] {
	return fromBoundaries(d.compare, lower, upper)
}

func (d Domain[B]) bounded(kind Kind, lo, hi B) Interval[B] {
	c := d.compare(lo, hi)
	if c > 0 || (c == 0 && kind != KindClosed) {
		return d.Empty()
	}
	return Interval[B]{kind: kind, lo: lo, hi: hi, compare: d.compare}
}

func fromBoundaries[B any](compare CompareFunc[B], lower, upper Boundary[B]) Interval[B] {
	lower.Side, upper.Side = Lower, Upper
	switch {
	case lower.Infinite && upper.Infinite:
		return Interval[B]{kind: KindUnbounded, compare: compare}
	case compareBoundaries(compare, lower, upper) > 0:
		return Interval[B]{compare: compare}
	case lower.Infinite:
		kind := KindUpTo
		if upper.Inclusive {
			kind = KindThrough
		}
		return Interval[B]{kind: kind, hi: upper.Value, compare: compare}
	case upper.Infinite:
		kind := KindGreaterThan
		if lower.Inclusive {
			kind = KindFrom
		}
		return Interval[B]{kind: kind, lo: lower.Value, compare: compare}
	}

	var kind Kind
	switch {
	case lower.Inclusive && upper.Inclusive:
		kind = KindClosed
	case lower.Inclusive:
		kind = KindRightOpen
	case upper.Inclusive:
		kind = KindLeftOpen
	default:
		kind = KindOpen
	}
	return Interval[B]{kind: kind, lo: lower.Value, hi: upper.Value, compare: compare}
}
