package interval

// Side tells which end of an interval a boundary belongs to.
type Side uint8

const (
	Lower Side = iota
	Upper
)

func (s Side) String() string {
	if s == Lower {
		return "lower"
	}
	return "upper"
}

// Boundary is one end of an interval. An infinite boundary has no value and
// stands for "no lower bound" or "no upper bound" depending on its side.
type Boundary[B any] struct {
	Value     B
	Inclusive bool
	Infinite  bool
	Side      Side
}

func lowerBoundary[B any](v B, inclusive bool) Boundary[B] {
	return Boundary[B]{Value: v, Inclusive: inclusive, Side: Lower}
}

func upperBoundary[B any](v B, inclusive bool) Boundary[B] {
	return Boundary[B]{Value: v, Inclusive: inclusive, Side: Upper}
}

func noLowerBound[B any]() Boundary[B] {
	return Boundary[B]{Infinite: true, Side: Lower}
}

func noUpperBound[B any]() Boundary[B] {
	return Boundary[B]{Infinite: true, Side: Upper}
}

// point is the boundary of a single value, which compares equal to an
// inclusive boundary on that value whatever its side.
func point[B any](v B) Boundary[B] {
	return Boundary[B]{Value: v, Inclusive: true}
}

// flip turns a lower boundary into the upper boundary that ends right before
// it and vice versa.
func (r Boundary[B]) flip() Boundary[B] {
	r.Inclusive = !r.Inclusive
	if r.Side == Lower {
		r.Side = Upper
	} else {
		r.Side = Lower
	}
	return r
}

// rank sorts the sentinels: -1 for no lower bound, 1 for no upper bound and 0
// for any finite boundary.
func (r Boundary[B]) rank() int {
	switch {
	case !r.Infinite:
		return 0
	case r.Side == Lower:
		return -1
	default:
		return 1
	}
}

// bias places a finite boundary just before (-1), at (0) or just after (+1)
// its value.
//
//	lower inclusive  [v   0
//	lower exclusive  (v  +1
//	upper inclusive   v]  0
//	upper exclusive   v) -1
//
// [v sorts before (v so that [v,v] sorts before (v,w] in a sorted entry list.
func (r Boundary[B]) bias() int {
	switch {
	case r.Inclusive:
		return 0
	case r.Side == Lower:
		return 1
	default:
		return -1
	}
}

// compareBoundaries orders boundaries of either side on one line, so that
// the upper boundary of (a,b) compares against the lower boundary of [b,c).
// compare is only called when both boundaries are finite.
func compareBoundaries[B any](compare CompareFunc[B], a, b Boundary[B]) int {
	ra, rb := a.rank(), b.rank()
	if ra != 0 || rb != 0 {
		return ra - rb
	}
	if c := compare(a.Value, b.Value); c != 0 {
		return c
	}
	return a.bias() - b.bias()
}

// adjacent reports whether lower starts exactly where upper stops, with
// one of both including the shared value, e.g. [0,5) and [5,10].
func adjacent[B any](compare CompareFunc[B], upper, lower Boundary[B]) bool {
	if upper.Infinite || lower.Infinite {
		return false
	}
	if compare(upper.Value, lower.Value) != 0 {
		return false
	}
	return lower.bias()-upper.bias() == 1
}

func minBoundary[B any](compare CompareFunc[B], a, b Boundary[B]) Boundary[B] {
	if compareBoundaries(compare, a, b) <= 0 {
		return a
	}
	return b
}

func maxBoundary[B any](compare CompareFunc[B], a, b Boundary[B]) Boundary[B] {
	if compareBoundaries(compare, a, b) >= 0 {
		return a
	}
	return b
}
