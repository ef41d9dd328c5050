package iptable

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/intervaltable/pkg/labeltable"
)

// Route is a claimed address range and its labels.
type Route struct {
	Range  netipx.IPRange
	Labels labels.Set
}

type Routes []Route

func newRoute(e labeltable.Entry[netip.Addr]) Route {
	return Route{Range: toIPRange(e.Interval), Labels: e.Value}
}

// Prefixes returns the smallest list of prefixes covering the route.
func (r Route) Prefixes() []netip.Prefix {
	return r.Range.Prefixes()
}

func (r Route) String() string {
	return fmt.Sprintf("%s %s", r.Range.String(), r.Labels.String())
}
