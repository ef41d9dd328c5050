package interval

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]struct {
		in    Interval[int]
		empty bool
		kind  Kind
	}{
		"ClosedPoint":      {in: Closed(3, 3), kind: KindClosed},
		"ClosedReversed":   {in: Closed(4, 3), empty: true},
		"OpenPoint":        {in: Open(3, 3), empty: true},
		"LeftOpenPoint":    {in: LeftOpen(3, 3), empty: true},
		"RightOpenPoint":   {in: RightOpen(3, 3), empty: true},
		"RightOpenValid":   {in: RightOpen(3, 4), kind: KindRightOpen},
		"OpenReversed":     {in: Open(5, 1), empty: true},
		"From":             {in: From(1), kind: KindFrom},
		"GreaterThan":      {in: GreaterThan(1), kind: KindGreaterThan},
		"Through":          {in: Through(1), kind: KindThrough},
		"UpTo":             {in: UpTo(1), kind: KindUpTo},
		"Unbounded":        {in: Unbounded[int](), kind: KindUnbounded},
		"Empty":            {in: Empty[int](), empty: true},
		"ZeroValueIsEmpty": {in: Interval[int]{}, empty: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.empty, tc.in.IsEmpty())
			if tc.empty {
				assert.Equal(t, KindEmpty, tc.in.Kind())
				assert.True(t, tc.in.Equal(Empty[int]()))
				_, _, ok := tc.in.Bounds()
				assert.False(t, ok)
				return
			}
			assert.Equal(t, tc.kind, tc.in.Kind())
		})
	}
}

func TestBounds(t *testing.T) {
	lower, upper, ok := LeftOpen(1, 5).Bounds()
	assert.True(t, ok)
	assert.Equal(t, Boundary[int]{Value: 1, Inclusive: false, Side: Lower}, lower)
	assert.Equal(t, Boundary[int]{Value: 5, Inclusive: true, Side: Upper}, upper)

	lower, upper, ok = Through(7).Bounds()
	assert.True(t, ok)
	assert.True(t, lower.Infinite)
	assert.False(t, upper.Infinite)
	assert.Equal(t, 7, upper.Value)

	lower, upper, ok = Unbounded[int]().Bounds()
	assert.True(t, ok)
	assert.True(t, lower.Infinite)
	assert.True(t, upper.Infinite)
}

func TestContains(t *testing.T) {
	cases := map[string]struct {
		in  Interval[int]
		yes []int
		no  []int
	}{
		"Closed":      {in: Closed(0, 5), yes: []int{0, 3, 5}, no: []int{-1, 6}},
		"Open":        {in: Open(0, 5), yes: []int{1, 4}, no: []int{0, 5}},
		"LeftOpen":    {in: LeftOpen(0, 5), yes: []int{1, 5}, no: []int{0, 6}},
		"RightOpen":   {in: RightOpen(0, 5), yes: []int{0, 4}, no: []int{5, -1}},
		"From":        {in: From(3), yes: []int{3, 1000}, no: []int{2}},
		"GreaterThan": {in: GreaterThan(3), yes: []int{4}, no: []int{3}},
		"Through":     {in: Through(3), yes: []int{3, -1000}, no: []int{4}},
		"UpTo":        {in: UpTo(3), yes: []int{2}, no: []int{3}},
		"Unbounded":   {in: Unbounded[int](), yes: []int{-1000000, 0, 1000000}},
		"Empty":       {in: Empty[int](), no: []int{0, 1}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, p := range tc.yes {
				assert.True(t, tc.in.Contains(p), "%s should contain %d", tc.in, p)
				assert.Equal(t, 0, tc.in.ComparePoint(p))
			}
			for _, p := range tc.no {
				assert.False(t, tc.in.Contains(p), "%s should not contain %d", tc.in, p)
				assert.NotEqual(t, 0, tc.in.ComparePoint(p))
			}
		})
	}
}

func TestComparePoint(t *testing.T) {
	r := RightOpen(10, 20)
	assert.Equal(t, -1, r.ComparePoint(9))
	assert.Equal(t, 0, r.ComparePoint(10))
	assert.Equal(t, 1, r.ComparePoint(20))
	assert.Equal(t, -1, GreaterThan(10).ComparePoint(10))
	assert.Equal(t, 1, UpTo(10).ComparePoint(10))
}

func TestCompare(t *testing.T) {
	cases := map[string]struct {
		a, b Interval[float64]
		want int
	}{
		"EmptyEqualsEmpty":         {a: Empty[float64](), b: Open(3.0, 3.0), want: 0},
		"EmptyAfterUnbounded":      {a: Empty[float64](), b: Unbounded[float64](), want: 1},
		"RangeBeforeEmpty":         {a: RightOpen(10.0, 20.0), b: Empty[float64](), want: -1},
		"UnboundedBeforeClosed":    {a: Unbounded[float64](), b: Closed(100.0, 200.0), want: -1},
		"ClosedAfterRightOpen":     {a: Closed(0.0, 10.0), b: RightOpen(0.0, 10.0), want: 1},
		"ClosedLowerBeforeOpen":    {a: Closed(5.0, 6.0), b: LeftOpen(5.0, 6.0), want: -1},
		"NoLowerBoundFirst":        {a: Through(0.0), b: Closed(-100.0, 0.0), want: -1},
		"NoUpperBoundLast":         {a: From(0.0), b: Closed(0.0, 1e9), want: 1},
		"SameShapeSameBounds":      {a: LeftOpen(1.0, 2.0), b: LeftOpen(1.0, 2.0), want: 0},
		"LowerDecidesBeforeUpper":  {a: Closed(1.0, 100.0), b: Closed(2.0, 3.0), want: -1},
		"UnboundedEqualsUnbounded": {a: Unbounded[float64](), b: Ordered[float64]().Unbounded(), want: 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, sign(tc.a.Compare(tc.b)))
			assert.Equal(t, -tc.want, sign(tc.b.Compare(tc.a)))
			assert.Equal(t, tc.want == 0, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want < 0, tc.a.Less(tc.b))
		})
	}
}

func sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	}
	return 0
}

func TestOverlaps(t *testing.T) {
	cases := map[string]struct {
		a, b Interval[int]
		want bool
	}{
		"ClosedVsEmpty":          {a: Closed(0, 100), b: Empty[int](), want: false},
		"ClosedVsUnbounded":      {a: Closed(0, 100), b: Unbounded[int](), want: true},
		"ClosedVsInnerOpen":      {a: Closed(0, 100), b: Open(10, 20), want: true},
		"ClosedVsTouchingOpen":   {a: Closed(0, 100), b: Open(100, 200), want: false},
		"RightOpenVsRightOpen":   {a: RightOpen(0, 5), b: RightOpen(5, 10), want: false},
		"ClosedVsClosedAtPoint":  {a: Closed(0, 5), b: Closed(5, 10), want: true},
		"LeftOpenVsClosedAt":     {a: LeftOpen(0, 5), b: Closed(5, 10), want: true},
		"ThroughVsFrom":          {a: Through(5), b: From(5), want: true},
		"UpToVsFrom":             {a: UpTo(5), b: From(5), want: false},
		"ThroughVsGreaterThan":   {a: Through(5), b: GreaterThan(5), want: false},
		"DisjointClosed":         {a: Closed(0, 1), b: Closed(2, 3), want: false},
		"UnboundedVsUnbounded":   {a: Unbounded[int](), b: Unbounded[int](), want: true},
		"GreaterThanVsUpToSplit": {a: GreaterThan(1), b: UpTo(2), want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
			if !tc.want {
				assert.True(t, tc.a.Intersection(tc.b).IsEmpty())
			}
		})
	}
}

func TestRelations(t *testing.T) {
	assert.True(t, Closed(0, 4).EntirelyBefore(Closed(5, 9)))
	assert.False(t, Closed(5, 9).EntirelyBefore(Closed(0, 4)))
	assert.True(t, RightOpen(0, 5).EntirelyBefore(Closed(5, 9)))
	assert.False(t, Closed(0, 5).EntirelyBefore(Closed(5, 9)))

	assert.True(t, Closed(2, 3).CoveredBy(Closed(0, 5)))
	assert.True(t, Closed(0, 5).CoveredBy(Closed(0, 5)))
	assert.False(t, Closed(0, 5).CoveredBy(RightOpen(0, 5)))

	assert.True(t, Closed(2, 3).InMiddleOf(Closed(0, 5)))
	assert.False(t, Closed(0, 3).InMiddleOf(Closed(0, 5)))
	assert.True(t, LeftOpen(0, 3).InMiddleOf(Closed(0, 5)))
	assert.False(t, Closed(0, 3).InMiddleOf(LeftOpen(0, 5)))

	assert.True(t, Closed(-1, 3).OverlapsStartOf(Closed(0, 5)))
	assert.False(t, Closed(-1, 5).OverlapsStartOf(Closed(0, 5)))
	assert.True(t, Closed(3, 9).OverlapsEndOf(Closed(0, 5)))
	assert.False(t, Closed(0, 9).OverlapsEndOf(Closed(0, 5)))

	assert.True(t, RightOpen(0, 5).Adjacent(Closed(5, 10)))
	assert.True(t, Closed(0, 5).Adjacent(GreaterThan(5)))
	assert.False(t, RightOpen(0, 5).Adjacent(LeftOpen(5, 10)))
	assert.False(t, Closed(0, 5).Adjacent(Closed(5, 10)))
	assert.False(t, Closed(5, 10).Adjacent(RightOpen(0, 5)))
}

func TestIntersection(t *testing.T) {
	cases := map[string]struct {
		a, b, want Interval[int]
	}{
		"RightOpenLeftOpen": {a: RightOpen(0, 10), b: LeftOpen(5, 15), want: Open(5, 10)},
		"Touching":          {a: RightOpen(0, 10), b: RightOpen(10, 15), want: Empty[int]()},
		"FromUpTo":          {a: From(0), b: UpTo(15), want: RightOpen(0, 15)},
		"UpToGreaterThan":   {a: UpTo(100), b: GreaterThan(90), want: Open(90, 100)},
		"UpToGreaterThan99": {a: UpTo(100), b: GreaterThan(99), want: Open(99, 100)},
		"ClosedEmpty":       {a: Closed(0, 100), b: Empty[int](), want: Empty[int]()},
		"ClosedUnbounded":   {a: Closed(0, 100), b: Unbounded[int](), want: Closed(0, 100)},
		"UnboundedBoth":     {a: Unbounded[int](), b: Unbounded[int](), want: Unbounded[int]()},
		"ThroughThrough":    {a: Through(3), b: Through(5), want: Through(3)},
		"FromGreaterThan":   {a: From(3), b: GreaterThan(3), want: GreaterThan(3)},
		"SinglePoint":       {a: Closed(0, 5), b: Closed(5, 10), want: Closed(5, 5)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.a.Intersection(tc.b)
			assert.True(t, tc.want.Equal(got), "-want %s, +got %s", tc.want, got)
			assert.Equal(t, tc.want.Kind(), got.Kind())
			got = tc.b.Intersection(tc.a)
			assert.True(t, tc.want.Equal(got), "-want %s, +got %s", tc.want, got)
		})
	}
}

func TestSubtract(t *testing.T) {
	cases := map[string]struct {
		a, b          Interval[int]
		first, second Interval[int]
	}{
		"NoOverlap":      {a: Closed(0, 5), b: Closed(6, 10), first: Closed(0, 5), second: Empty[int]()},
		"Touching":       {a: RightOpen(0, 5), b: Closed(5, 10), first: RightOpen(0, 5), second: Empty[int]()},
		"Covered":        {a: Closed(2, 3), b: Closed(0, 5), first: Empty[int](), second: Empty[int]()},
		"CoveredExactly": {a: Closed(0, 5), b: Closed(0, 5), first: Empty[int](), second: Empty[int]()},
		"Middle":         {a: RightOpen(0, 10), b: RightOpen(3, 7), first: RightOpen(0, 3), second: RightOpen(7, 10)},
		"MiddleOpen":     {a: Closed(0, 10), b: Open(3, 7), first: Closed(0, 3), second: Closed(7, 10)},
		"Suffix":         {a: Closed(0, 10), b: Closed(5, 100), first: RightOpen(0, 5), second: Empty[int]()},
		"Prefix":         {a: Closed(3, 10), b: Closed(2, 5), first: LeftOpen(5, 10), second: Empty[int]()},
		"PrefixPoint":    {a: Closed(1, 2), b: Closed(2, 5), first: RightOpen(1, 2), second: Empty[int]()},
		"UnboundedLeft":  {a: Unbounded[int](), b: From(5), first: UpTo(5), second: Empty[int]()},
		"UnboundedRight": {a: Unbounded[int](), b: Through(5), first: GreaterThan(5), second: Empty[int]()},
		"UnboundedMid":   {a: Unbounded[int](), b: Closed(0, 1), first: UpTo(0), second: GreaterThan(1)},
		"ByUnbounded":    {a: Closed(0, 1), b: Unbounded[int](), first: Empty[int](), second: Empty[int]()},
		"EndpointOnly":   {a: Closed(0, 10), b: Closed(10, 10), first: RightOpen(0, 10), second: Empty[int]()},
		"InnerPoint":     {a: Closed(0, 10), b: Closed(4, 4), first: RightOpen(0, 4), second: LeftOpen(4, 10)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			first, second := tc.a.Subtract(tc.b)
			assert.True(t, tc.first.Equal(first), "first -want %s, +got %s", tc.first, first)
			assert.True(t, tc.second.Equal(second), "second -want %s, +got %s", tc.second, second)
		})
	}
}

func TestSubtractConcatenate(t *testing.T) {
	// removing an interior piece and gluing it back gives the original
	a, b := Closed(0, 10), Open(3, 7)
	first, second := a.Subtract(b)
	joined, ok := first.Concatenate(b)
	assert.True(t, ok)
	joined, ok = joined.Concatenate(second)
	assert.True(t, ok)
	assert.True(t, a.Equal(joined), "got %s", joined)

	// a suffix removal glued back covers a ∪ b
	a, b = RightOpen(0, 10), Closed(5, 20)
	first, _ = a.Subtract(b)
	joined, ok = first.Concatenate(b)
	assert.True(t, ok)
	assert.True(t, a.CoveredBy(joined))
	assert.True(t, Closed(0, 20).Equal(joined), "got %s", joined)
}

func TestConcatenate(t *testing.T) {
	cases := map[string]struct {
		a, b Interval[int]
		want Interval[int]
		ok   bool
	}{
		"Adjacent":        {a: RightOpen(0, 5), b: Closed(5, 10), want: Closed(0, 10), ok: true},
		"AdjacentReverse": {a: Closed(5, 10), b: RightOpen(0, 5), want: Closed(0, 10), ok: true},
		"AdjacentOpen":    {a: Closed(0, 5), b: Open(5, 10), want: RightOpen(0, 10), ok: true},
		"Overlapping":     {a: Closed(0, 6), b: LeftOpen(5, 10), want: Closed(0, 10), ok: true},
		"Gap":             {a: RightOpen(0, 5), b: Open(5, 10), ok: false},
		"Disjoint":        {a: Closed(0, 4), b: Closed(5, 10), ok: false},
		"Covering":        {a: Closed(0, 10), b: Open(2, 3), want: Closed(0, 10), ok: true},
		"ToUnbounded":     {a: UpTo(0), b: From(0), want: Unbounded[int](), ok: true},
		"ThroughFrom":     {a: Through(0), b: Closed(0, 3), want: Through(3), ok: true},
		"WithEmpty":       {a: Closed(0, 3), b: Empty[int](), ok: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := tc.a.Concatenate(tc.b)
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				assert.True(t, got.IsEmpty())
				return
			}
			assert.True(t, tc.want.Equal(got), "-want %s, +got %s", tc.want, got)
			assert.Equal(t, tc.want.Kind(), got.Kind())
		})
	}
}

func TestString(t *testing.T) {
	cases := map[string]struct {
		in   Interval[int]
		want string
	}{
		"Closed":      {in: Closed(1, 2), want: "[1, 2]"},
		"Open":        {in: Open(1, 2), want: "(1, 2)"},
		"LeftOpen":    {in: LeftOpen(1, 2), want: "(1, 2]"},
		"RightOpen":   {in: RightOpen(1, 2), want: "[1, 2)"},
		"From":        {in: From(1), want: "[1, +inf)"},
		"GreaterThan": {in: GreaterThan(1), want: "(1, +inf)"},
		"Through":     {in: Through(1), want: "(-inf, 1]"},
		"UpTo":        {in: UpTo(1), want: "(-inf, 1)"},
		"Unbounded":   {in: Unbounded[int](), want: "(-inf, +inf)"},
		"Empty":       {in: Closed(2, 1), want: "empty"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.String())
		})
	}
}

func TestDomainWithCompareMethod(t *testing.T) {
	d := NewDomain(netip.Addr.Compare)
	r := d.Closed(netip.MustParseAddr("10.0.0.1"), netip.MustParseAddr("10.0.0.10"))
	assert.True(t, r.Contains(netip.MustParseAddr("10.0.0.5")))
	assert.False(t, r.Contains(netip.MustParseAddr("10.0.0.11")))

	first, second := r.Subtract(d.Closed(netip.MustParseAddr("10.0.0.3"), netip.MustParseAddr("10.0.0.4")))
	assert.Equal(t, KindRightOpen, first.Kind())
	assert.Equal(t, KindLeftOpen, second.Kind())

	u := d.Unbounded().Intersection(r)
	assert.True(t, u.Equal(r))

	lower, upper, _ := r.Bounds()
	assert.True(t, d.CompareBoundaries(lower, upper) < 0)
	assert.True(t, d.FromBounds(lower, upper).Equal(r))
}
