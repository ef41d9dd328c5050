package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"

	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/intervaltable/pkg/interval"
	"github.com/henderiw/intervaltable/pkg/iptable"
	"github.com/henderiw/intervaltable/pkg/labeltable"
)

type Kind string

const (
	KindInt Kind = "int"
	KindIP  Kind = "ip"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config describes a table and the entries to load into it, in order.
//
//	kind: ip
//	range: 10.0.0.0-10.0.0.255
//	entries:
//	- prefix: 10.0.0.0/28
//	  labels: {tenant: a}
type Config struct {
	Kind Kind `yaml:"kind"`
	// Range bounds the table. It is an interval for kind int and an address
	// range or prefix for kind ip.
	Range   string  `yaml:"range,omitempty"`
	Entries []Entry `yaml:"entries,omitempty"`
}

// Entry sets one of Interval, Range or Prefix.
type Entry struct {
	Interval string            `yaml:"interval,omitempty"`
	Range    string            `yaml:"range,omitempty"`
	Prefix   string            `yaml:"prefix,omitempty"`
	Labels   map[string]string `yaml:"labels,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}
	if cfg.Kind == "" {
		cfg.Kind = KindInt
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *Config) Validate() error {
	var errm error
	switch r.Kind {
	case KindInt:
		if r.Range != "" {
			if _, err := interval.ParseInt(r.Range); err != nil {
				errm = errors.Join(errm, fmt.Errorf("%w: range: %v", ErrInvalidConfig, err))
			}
		}
	case KindIP:
		if r.Range == "" {
			errm = errors.Join(errm, fmt.Errorf("%w: kind ip requires a range", ErrInvalidConfig))
		} else if _, err := iptable.ParseRange(r.Range); err != nil {
			errm = errors.Join(errm, fmt.Errorf("%w: range: %v", ErrInvalidConfig, err))
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, r.Kind)
	}

	for i, e := range r.Entries {
		if err := e.validate(r.Kind); err != nil {
			errm = errors.Join(errm, fmt.Errorf("%w: entry %d: %v", ErrInvalidConfig, i, err))
		}
	}
	return errm
}

func (r Entry) validate(kind Kind) error {
	set := 0
	for _, s := range []string{r.Interval, r.Range, r.Prefix} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of interval, range or prefix must be set")
	}
	if _, err := labels.ValidatedSelectorFromSet(r.Labels); err != nil {
		return err
	}
	switch kind {
	case KindInt:
		if r.Interval == "" {
			return fmt.Errorf("kind int entries require an interval")
		}
		_, err := interval.ParseInt(r.Interval)
		return err
	default:
		if r.Interval != "" {
			return fmt.Errorf("kind ip entries require a range or prefix")
		}
		_, err := iptable.ParseRange(r.key())
		return err
	}
}

func (r Entry) key() string {
	switch {
	case r.Interval != "":
		return r.Interval
	case r.Range != "":
		return r.Range
	default:
		return r.Prefix
	}
}

// BuildIntTable loads the entries into a new integer table. Later entries
// overwrite earlier ones where they overlap.
func (r *Config) BuildIntTable(opts ...labeltable.Option[int64]) (labeltable.Table[int64], error) {
	if r.Kind != KindInt {
		return nil, fmt.Errorf("%w: kind %s is not %s", ErrInvalidConfig, r.Kind, KindInt)
	}
	if r.Range != "" {
		bounds, err := interval.ParseInt(r.Range)
		if err != nil {
			return nil, err
		}
		opts = append(opts, labeltable.WithBounds(bounds))
	}
	t, err := labeltable.New(opts...)
	if err != nil {
		return nil, err
	}
	var errm error
	for i, e := range r.Entries {
		iv, err := interval.ParseInt(e.Interval)
		if err != nil {
			errm = errors.Join(errm, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		if err := t.Set(iv, labels.Set(e.Labels)); err != nil {
			errm = errors.Join(errm, fmt.Errorf("entry %d: %w", i, err))
		}
	}
	return t, errm
}

// BuildIPTable loads the entries into a new address table. Later entries
// overwrite earlier ones where they overlap.
func (r *Config) BuildIPTable(opts ...labeltable.Option[netip.Addr]) (iptable.IPTable, error) {
	if r.Kind != KindIP {
		return nil, fmt.Errorf("%w: kind %s is not %s", ErrInvalidConfig, r.Kind, KindIP)
	}
	ipRange, err := iptable.ParseRange(r.Range)
	if err != nil {
		return nil, err
	}
	t, err := iptable.New(ipRange.From(), ipRange.To(), opts...)
	if err != nil {
		return nil, err
	}
	var errm error
	for i, e := range r.Entries {
		if err := t.Set(e.key(), labels.Set(e.Labels)); err != nil {
			errm = errors.Join(errm, fmt.Errorf("entry %d: %w", i, err))
		}
	}
	return t, errm
}
