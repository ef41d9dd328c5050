package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidInterval = errors.New("invalid interval")

// ParseBoundFunc parses one bound value.
type ParseBoundFunc[B any] func(s string) (B, error)

// Parse parses the text form of an interval.
//
// Supported formats:
//   - [lo, hi], (lo, hi), (lo, hi], [lo, hi)
//   - (-inf, hi], [lo, +inf), (, hi], [lo, ) and (-inf, +inf)
//   - >N, >=N, <N, <=N
//   - N, the closed interval [N, N]
//   - empty
//
// An unbounded side must use '(' or ')'. Spaces are ignored. A bounded
// interval whose bounds are out of order parses as the empty interval.
func Parse[B any](s string, d Domain[B], parseBound ParseBoundFunc[B]) (Interval[B], error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return d.Empty(), fmt.Errorf("%w: empty string", ErrInvalidInterval)
	}
	bound := func(tok string) (B, error) {
		v, err := parseBound(strings.TrimSpace(tok))
		if err != nil {
			return v, fmt.Errorf("%w %q: %v", ErrInvalidInterval, s, err)
		}
		return v, nil
	}

	switch {
	case in == "empty" || in == "∅":
		return d.Empty(), nil
	case strings.HasPrefix(in, ">="):
		v, err := bound(in[2:])
		if err != nil {
			return d.Empty(), err
		}
		return d.From(v), nil
	case strings.HasPrefix(in, ">"):
		v, err := bound(in[1:])
		if err != nil {
			return d.Empty(), err
		}
		return d.GreaterThan(v), nil
	case strings.HasPrefix(in, "<="):
		v, err := bound(in[2:])
		if err != nil {
			return d.Empty(), err
		}
		return d.Through(v), nil
	case strings.HasPrefix(in, "<"):
		v, err := bound(in[1:])
		if err != nil {
			return d.Empty(), err
		}
		return d.UpTo(v), nil
	case in[0] != '[' && in[0] != '(':
		v, err := bound(in)
		if err != nil {
			return d.Empty(), err
		}
		return d.Closed(v, v), nil
	}

	open, closing := in[0], in[len(in)-1]
	if len(in) < 2 || (closing != ']' && closing != ')') {
		return d.Empty(), fmt.Errorf("%w %q: missing closing bracket", ErrInvalidInterval, s)
	}
	loTok, hiTok, ok := strings.Cut(in[1:len(in)-1], ",")
	if !ok {
		return d.Empty(), fmt.Errorf("%w %q: no comma", ErrInvalidInterval, s)
	}
	loTok, hiTok = strings.TrimSpace(loTok), strings.TrimSpace(hiTok)

	lower := noLowerBound[B]()
	if !isInfinity(loTok, "-") {
		v, err := bound(loTok)
		if err != nil {
			return d.Empty(), err
		}
		lower = lowerBoundary(v, open == '[')
	} else if open == '[' {
		return d.Empty(), fmt.Errorf("%w %q: unbounded lower side must be open", ErrInvalidInterval, s)
	}

	upper := noUpperBound[B]()
	if !isInfinity(hiTok, "+") {
		v, err := bound(hiTok)
		if err != nil {
			return d.Empty(), err
		}
		upper = upperBoundary(v, closing == ']')
	} else if closing == ']' {
		return d.Empty(), fmt.Errorf("%w %q: unbounded upper side must be open", ErrInvalidInterval, s)
	}

	return d.FromBounds(lower, upper), nil
}

func isInfinity(tok, sign string) bool {
	switch tok {
	case "", "inf", "∞", sign + "inf", sign + "∞":
		return true
	}
	return false
}

// ParseInt parses an interval over int64 bounds.
func ParseInt(s string) (Interval[int64], error) {
	return Parse(s, Ordered[int64](), func(tok string) (int64, error) {
		return strconv.ParseInt(tok, 10, 64)
	})
}

// ParseFloat parses an interval over float64 bounds.
func ParseFloat(s string) (Interval[float64], error) {
	return Parse(s, Ordered[float64](), func(tok string) (float64, error) {
		return strconv.ParseFloat(tok, 64)
	})
}
