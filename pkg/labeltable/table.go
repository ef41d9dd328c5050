package labeltable

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/intervaltable/pkg/interval"
	"github.com/henderiw/intervaltable/pkg/intervalmap"
)

var (
	ErrClaimed    = errors.New("already claimed")
	ErrNotClaimed = errors.New("not claimed")
	ErrOutOfRange = errors.New("out of range")
)

type Entry[B any] intervalmap.Entry[B, labels.Set]

type Table[B any] interface {
	Get(p B) (labels.Set, error)
	GetEntry(p B) (Entry[B], error)
	Claim(r interval.Interval[B], d labels.Set) error
	Set(r interval.Interval[B], d labels.Set) error
	Release(r interval.Interval[B]) error
	Update(p B, d labels.Set) error

	Iterate() *intervalmap.Iterator[B, labels.Set]

	Count() int
	Has(p B) bool

	IsFree(p B) bool
	Free(within interval.Interval[B]) []interval.Interval[B]

	Limited(r interval.Interval[B]) []Entry[B]
	GetAll() []Entry[B]
	GetByLabel(selector labels.Selector) []Entry[B]
}

// ValidationFn rejects intervals that may not be claimed. It is not applied
// to the initial entries.
type ValidationFn[B any] func(r interval.Interval[B]) error

type Option[B any] func(*table[B])

func WithLogger[B any](log logr.Logger) Option[B] {
	return func(r *table[B]) { r.log = log }
}

// WithBounds limits the table to r; nothing outside it can be claimed.
func WithBounds[B any](bounds interval.Interval[B]) Option[B] {
	return func(r *table[B]) { r.bounds = bounds }
}

func WithValidation[B any](fn ValidationFn[B]) Option[B] {
	return func(r *table[B]) { r.validateFn = fn }
}

// WithInitEntries claims the entries when the table is created.
func WithInitEntries[B any](entries []Entry[B]) Option[B] {
	return func(r *table[B]) { r.initEntries = entries }
}

func New[B any](opts ...Option[B]) (Table[B], error) {
	r := &table[B]{
		m:      new(sync.RWMutex),
		table:  intervalmap.NewWithEqual[B, labels.Set](labels.Equals),
		bounds: interval.Unbounded[B](),
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}

	var errm error
	for _, e := range r.initEntries {
		if err := r.add(e.Interval, e.Value, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	r.initEntries = nil
	return r, errm
}

type table[B any] struct {
	m           *sync.RWMutex
	table       *intervalmap.Map[B, labels.Set]
	bounds      interval.Interval[B]
	validateFn  ValidationFn[B]
	initEntries []Entry[B]
	log         logr.Logger
}

func (r *table[B]) validate(iv interval.Interval[B], init bool) error {
	if iv.IsEmpty() {
		return fmt.Errorf("interval %s: %w", iv, intervalmap.ErrEmptyInterval)
	}
	if !iv.CoveredBy(r.bounds) {
		return fmt.Errorf("interval %s does not fit in %s: %w", iv, r.bounds, ErrOutOfRange)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(iv); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[B]) Get(p B) (labels.Set, error) {
	e, err := r.GetEntry(p)
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

func (r *table[B]) GetEntry(p B) (Entry[B], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.table.GetEntry(p)
	if !ok {
		return Entry[B]{}, fmt.Errorf("no match found for: %v", p)
	}
	return copyEntry(e), nil
}

// Claim assigns d to r. It fails when any part of r is claimed already.
func (r *table[B]) Claim(iv interval.Interval[B], d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(iv, d, false)
}

// Set assigns d to r, overwriting whatever was claimed in r before.
func (r *table[B]) Set(iv interval.Interval[B], d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(iv, false); err != nil {
		return err
	}
	r.log.V(1).Info("set", "interval", iv.String(), "labels", d.String())
	return r.table.Insert(labels.Merge(d, nil), iv)
}

func (r *table[B]) Release(iv interval.Interval[B]) error {
	r.m.Lock()
	defer r.m.Unlock()

	if iv.IsEmpty() {
		return fmt.Errorf("release %s: %w", iv, intervalmap.ErrEmptyInterval)
	}
	r.log.V(1).Info("release", "interval", iv.String())
	return r.table.Remove(iv)
}

// Update replaces the labels of the entry covering p. The interval of the
// entry is left alone. Touching claims with equal labels are stored as one
// entry, so Update relabels all of them.
func (r *table[B]) Update(p B, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	i, ok := r.table.IndexOf(p)
	if !ok {
		return fmt.Errorf("update %v: %w", p, ErrNotClaimed)
	}
	r.log.V(1).Info("update", "interval", r.table.At(i).Interval.String(), "labels", d.String())
	return r.table.SetValueAt(i, labels.Merge(d, nil))
}

func (r *table[B]) Iterate() *intervalmap.Iterator[B, labels.Set] {
	r.m.RLock()
	defer r.m.RUnlock()

	m := r.table.Clone()
	for i := 0; i < m.Len(); i++ {
		_ = m.SetValueAt(i, labels.Merge(m.At(i).Value, nil))
	}
	return m.Iterate()
}

func (r *table[B]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.table.Len()
}

func (r *table[B]) Has(p B) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table.IndexOf(p)
	return ok
}

func (r *table[B]) IsFree(p B) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.bounds.Contains(p) && r.isFree(p)
}

func (r *table[B]) isFree(p B) bool {
	_, ok := r.table.IndexOf(p)
	return !ok
}

// Free returns the unclaimed parts of within, clipped to the table bounds.
func (r *table[B]) Free(within interval.Interval[B]) []interval.Interval[B] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.table.Gaps(within.Intersection(r.bounds))
}

func (r *table[B]) Limited(iv interval.Interval[B]) []Entry[B] {
	r.m.RLock()
	defer r.m.RUnlock()

	return toEntries(r.table.Limited(iv).Entries())
}

func (r *table[B]) GetAll() []Entry[B] {
	r.m.RLock()
	defer r.m.RUnlock()

	return toEntries(r.table.Entries())
}

func (r *table[B]) GetByLabel(selector labels.Selector) []Entry[B] {
	var entries []Entry[B]

	iter := r.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value()) {
			entries = append(entries, Entry[B](iter.Entry()))
		}
	}
	return entries
}

func (r *table[B]) add(iv interval.Interval[B], d labels.Set, init bool) error {
	if err := r.validate(iv, init); err != nil {
		return err
	}
	if claimed := r.table.Limited(iv); claimed.Len() > 0 {
		return fmt.Errorf("interval %s overlaps %s: %w", iv, claimed.At(0).Interval, ErrClaimed)
	}
	r.log.V(1).Info("claim", "interval", iv.String(), "labels", d.String(), "init", init)
	return r.table.Insert(labels.Merge(d, nil), iv)
}

func toEntries[B any](entries intervalmap.Entries[B, labels.Set]) []Entry[B] {
	out := make([]Entry[B], 0, len(entries))
	for _, e := range entries {
		out = append(out, copyEntry(e))
	}
	return out
}

// copyEntry returns e with its own copy of the labels.
func copyEntry[B any](e intervalmap.Entry[B, labels.Set]) Entry[B] {
	return Entry[B]{Interval: e.Interval, Value: labels.Merge(e.Value, nil)}
}
