package intervalmap

import (
	"fmt"

	"github.com/henderiw/intervaltable/pkg/interval"
)

type Entry[B, V any] struct {
	Interval interval.Interval[B]
	Value    V
}

func NewEntry[B, V any](r interval.Interval[B], v V) Entry[B, V] {
	return Entry[B, V]{Interval: r, Value: v}
}

func (r Entry[B, V]) String() string {
	return fmt.Sprintf("%s: %v", r.Interval, r.Value)
}

type Entries[B, V any] []Entry[B, V]
