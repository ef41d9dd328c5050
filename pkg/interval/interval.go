package interval

import (
	"cmp"
	"fmt"
	"strings"
)

// Kind is the shape of an interval.
type Kind uint8

const (
	KindEmpty       Kind = iota // {}
	KindUnbounded               // (-inf, +inf)
	KindClosed                  // [lo, hi]
	KindOpen                    // (lo, hi)
	KindLeftOpen                // (lo, hi]
	KindRightOpen               // [lo, hi)
	KindFrom                    // [lo, +inf)
	KindGreaterThan             // (lo, +inf)
	KindThrough                 // (-inf, hi]
	KindUpTo                    // (-inf, hi)
)

var kindNames = [...]string{
	KindEmpty:       "empty",
	KindUnbounded:   "unbounded",
	KindClosed:      "closed",
	KindOpen:        "open",
	KindLeftOpen:    "leftOpen",
	KindRightOpen:   "rightOpen",
	KindFrom:        "from",
	KindGreaterThan: "greaterThan",
	KindThrough:     "through",
	KindUpTo:        "upTo",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Interval is a contiguous subset of an ordered domain. The zero value is the
// empty interval.
//
// Intervals are values: every operation returns a new Interval and never
// modifies its receiver.
type Interval[B any] struct {
	kind    Kind
	lo, hi  B
	compare CompareFunc[B]
}

func Empty[B any]() Interval[B] { return Interval[B]{} }

func Unbounded[B any]() Interval[B] { return Interval[B]{kind: KindUnbounded} }

func Closed[B cmp.Ordered](lo, hi B) Interval[B] { return Ordered[B]().Closed(lo, hi) }

func Open[B cmp.Ordered](lo, hi B) Interval[B] { return Ordered[B]().Open(lo, hi) }

func LeftOpen[B cmp.Ordered](lo, hi B) Interval[B] { return Ordered[B]().LeftOpen(lo, hi) }

func RightOpen[B cmp.Ordered](lo, hi B) Interval[B] { return Ordered[B]().RightOpen(lo, hi) }

func From[B cmp.Ordered](lo B) Interval[B] { return Ordered[B]().From(lo) }

func GreaterThan[B cmp.Ordered](lo B) Interval[B] { return Ordered[B]().GreaterThan(lo) }

func Through[B cmp.Ordered](hi B) Interval[B] { return Ordered[B]().Through(hi) }

func UpTo[B cmp.Ordered](hi B) Interval[B] { return Ordered[B]().UpTo(hi) }

func (r Interval[B]) Kind() Kind { return r.kind }

func (r Interval[B]) IsEmpty() bool { return r.kind == KindEmpty }

// Lower returns the lower boundary of r. It is meaningless for an empty
// interval.
func (r Interval[B]) Lower() Boundary[B] {
	switch r.kind {
	case KindClosed, KindRightOpen, KindFrom:
		return lowerBoundary(r.lo, true)
	case KindOpen, KindLeftOpen, KindGreaterThan:
		return lowerBoundary(r.lo, false)
	default:
		return noLowerBound[B]()
	}
}

// Upper returns the upper boundary of r. It is meaningless for an empty
// interval.
func (r Interval[B]) Upper() Boundary[B] {
	switch r.kind {
	case KindClosed, KindLeftOpen, KindThrough:
		return upperBoundary(r.hi, true)
	case KindOpen, KindRightOpen, KindUpTo:
		return upperBoundary(r.hi, false)
	default:
		return noUpperBound[B]()
	}
}

// Bounds returns the boundaries of r, or ok == false when r is empty.
func (r Interval[B]) Bounds() (lower, upper Boundary[B], ok bool) {
	if r.IsEmpty() {
		return lower, upper, false
	}
	return r.Lower(), r.Upper(), true
}

// Contains returns whether p lies within r.
func (r Interval[B]) Contains(p B) bool {
	switch r.kind {
	case KindEmpty:
		return false
	case KindUnbounded:
		return true
	}
	pt := point(p)
	return compareBoundaries(r.compare, r.Lower(), pt) <= 0 &&
		compareBoundaries(r.compare, pt, r.Upper()) <= 0
}

// ComparePoint returns -1 when p lies before r, 0 when r contains p and 1
// when p lies after r. An empty interval reports every point as before it.
func (r Interval[B]) ComparePoint(p B) int {
	switch r.kind {
	case KindEmpty:
		return -1
	case KindUnbounded:
		return 0
	}
	pt := point(p)
	if compareBoundaries(r.compare, pt, r.Lower()) < 0 {
		return -1
	}
	if compareBoundaries(r.compare, pt, r.Upper()) > 0 {
		return 1
	}
	return 0
}

// String renders r as [lo, hi), (-inf, hi], [lo, +inf) and so on, or
// "empty".
func (r Interval[B]) String() string {
	if r.IsEmpty() {
		return "empty"
	}
	var b strings.Builder
	lower, upper := r.Lower(), r.Upper()
	if lower.Infinite {
		b.WriteString("(-inf")
	} else {
		if lower.Inclusive {
			b.WriteByte('[')
		} else {
			b.WriteByte('(')
		}
		fmt.Fprint(&b, lower.Value)
	}
	b.WriteString(", ")
	if upper.Infinite {
		b.WriteString("+inf)")
	} else {
		fmt.Fprint(&b, upper.Value)
		if upper.Inclusive {
			b.WriteByte(']')
		} else {
			b.WriteByte(')')
		}
	}
	return b.String()
}

// comparer returns the compare func shared by r and o. Empty and unbounded
// intervals built without a Domain carry none.
func (r Interval[B]) comparer(o Interval[B]) CompareFunc[B] {
	if r.compare != nil {
		return r.compare
	}
	return o.compare
}
