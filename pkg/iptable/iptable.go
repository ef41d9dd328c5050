package iptable

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/intervaltable/pkg/interval"
	"github.com/henderiw/intervaltable/pkg/labeltable"
)

var domain = interval.NewDomain(netip.Addr.Compare)

type IPTable interface {
	Get(addr string) (Route, error)
	Claim(s string, d labels.Set) error
	Set(s string, d labels.Set) error
	Release(s string) error
	Update(addr string, d labels.Set) error

	Count() int
	Has(addr string) bool

	IsFree(addr string) bool
	FindFree() (netip.Addr, error)
	Free() []netipx.IPRange

	Limited(s string) (Routes, error)
	GetAll() Routes
	GetByLabel(selector labels.Selector) Routes
}

// New returns a table of the addresses from through to. Claims are accepted
// as a single address, a from-to range or a prefix.
func New(from, to netip.Addr, opts ...labeltable.Option[netip.Addr]) (IPTable, error) {
	ipRange := netipx.IPRangeFrom(from, to)
	if !ipRange.IsValid() {
		return nil, fmt.Errorf("invalid ip range from %s to %s", from, to)
	}
	opts = append(opts, labeltable.WithBounds(domain.Closed(ipRange.From(), ipRange.To())))
	t, err := labeltable.New(opts...)
	if err != nil {
		return nil, err
	}
	return &ipTable{
		table:   t,
		ipRange: ipRange,
	}, nil
}

type ipTable struct {
	table   labeltable.Table[netip.Addr]
	ipRange netipx.IPRange
}

func (r *ipTable) Get(addr string) (Route, error) {
	// Validate IP address
	ip, err := r.validateIP(addr)
	if err != nil {
		return Route{}, err
	}
	e, err := r.table.GetEntry(ip)
	if err != nil {
		return Route{}, err
	}
	return newRoute(e), nil
}

func (r *ipTable) Claim(s string, d labels.Set) error {
	ipRange, err := r.validateRange(s)
	if err != nil {
		return err
	}
	if err := r.table.Claim(toInterval(ipRange), d); err != nil {
		return fmt.Errorf("claim failed %s: %w", s, err)
	}
	return nil
}

func (r *ipTable) Set(s string, d labels.Set) error {
	ipRange, err := r.validateRange(s)
	if err != nil {
		return err
	}
	return r.table.Set(toInterval(ipRange), d)
}

func (r *ipTable) Release(s string) error {
	ipRange, err := r.validateRange(s)
	if err != nil {
		return err
	}
	return r.table.Release(toInterval(ipRange))
}

func (r *ipTable) Update(addr string, d labels.Set) error {
	// Validate IP address
	ip, err := r.validateIP(addr)
	if err != nil {
		return err
	}
	if err := r.table.Update(ip, d); err != nil {
		return fmt.Errorf("update failed ip %s: %w", addr, err)
	}
	return nil
}

func (r *ipTable) Count() int {
	return r.table.Count()
}

func (r *ipTable) Has(addr string) bool {
	// Validate IP address
	ip, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	return r.table.Has(ip)
}

func (r *ipTable) IsFree(addr string) bool {
	// Validate IP address
	ip, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	return r.table.IsFree(ip)
}

// FindFree returns the lowest unclaimed address.
func (r *ipTable) FindFree() (netip.Addr, error) {
	free := r.Free()
	if len(free) == 0 {
		return netip.Addr{}, fmt.Errorf("no free entry found")
	}
	return free[0].From(), nil
}

// Free returns the unclaimed address ranges in order.
func (r *ipTable) Free() []netipx.IPRange {
	var ranges []netipx.IPRange
	for _, iv := range r.table.Free(interval.Unbounded[netip.Addr]()) {
		if ipRange := toIPRange(iv); ipRange.IsValid() {
			ranges = append(ranges, ipRange)
		}
	}
	return ranges
}

// Limited returns the claimed parts of the address, range or prefix s.
func (r *ipTable) Limited(s string) (Routes, error) {
	ipRange, err := ParseRange(s)
	if err != nil {
		return nil, err
	}
	var routes Routes
	for _, e := range r.table.Limited(toInterval(ipRange)) {
		routes = append(routes, newRoute(e))
	}
	return routes, nil
}

func (r *ipTable) GetAll() Routes {
	var routes Routes
	for _, e := range r.table.GetAll() {
		routes = append(routes, newRoute(e))
	}
	return routes
}

func (r *ipTable) GetByLabel(selector labels.Selector) Routes {
	var routes Routes
	for _, e := range r.table.GetByLabel(selector) {
		routes = append(routes, newRoute(e))
	}
	return routes
}

func (r *ipTable) validateIP(addr string) (netip.Addr, error) {
	// Parse IP address
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ip address %s is invalid", addr)
	}
	if !r.ipRange.Contains(ip) {
		return netip.Addr{}, fmt.Errorf("ip address %s, does not fit in the range from %s to %s", addr, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return ip, nil
}

// validateRange parses an address, a from-to range or a prefix and checks it
// lies within the table.
func (r *ipTable) validateRange(s string) (netipx.IPRange, error) {
	ipRange, err := ParseRange(s)
	if err != nil {
		return netipx.IPRange{}, err
	}
	if !r.ipRange.Contains(ipRange.From()) || !r.ipRange.Contains(ipRange.To()) {
		return netipx.IPRange{}, fmt.Errorf("ip range %s, does not fit in the range from %s to %s", s, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return ipRange, nil
}

// ParseRange parses "10.0.0.1", "10.0.0.1-10.0.0.9" or "10.0.0.0/24".
func ParseRange(s string) (netipx.IPRange, error) {
	switch {
	case strings.Contains(s, "/"):
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("ip prefix %s is invalid", s)
		}
		return netipx.RangeOfPrefix(prefix.Masked()), nil
	case strings.Contains(s, "-"):
		ipRange, err := netipx.ParseIPRange(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("ip range %s is invalid: %w", s, err)
		}
		return ipRange, nil
	default:
		ip, err := netip.ParseAddr(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("ip address %s is invalid", s)
		}
		return netipx.IPRangeFrom(ip, ip), nil
	}
}

func toInterval(ipRange netipx.IPRange) interval.Interval[netip.Addr] {
	return domain.Closed(ipRange.From(), ipRange.To())
}

// toIPRange returns the addresses within iv. The range is invalid when iv
// holds no address, e.g. (10.0.0.1, 10.0.0.2).
func toIPRange(iv interval.Interval[netip.Addr]) netipx.IPRange {
	lower, upper, ok := iv.Bounds()
	if !ok || lower.Infinite || upper.Infinite {
		return netipx.IPRange{}
	}
	from, to := lower.Value, upper.Value
	if !lower.Inclusive {
		from = from.Next()
	}
	if !upper.Inclusive {
		to = to.Prev()
	}
	if !from.IsValid() || !to.IsValid() || to.Less(from) {
		return netipx.IPRange{}
	}
	return netipx.IPRangeFrom(from, to)
}
