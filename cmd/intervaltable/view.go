package main

import (
	"fmt"
	"net/netip"
	"strconv"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/intervaltable/pkg/config"
	"github.com/henderiw/intervaltable/pkg/interval"
	"github.com/henderiw/intervaltable/pkg/iptable"
	"github.com/henderiw/intervaltable/pkg/labeltable"
)

// view renders a table of either kind as text lines.
type view interface {
	get(p string) (string, error)
	list(selector labels.Selector) []string
	limit(s string) ([]string, error)
	free() []string
}

type intView struct {
	table labeltable.Table[int64]
}

func newIntView(cfg *config.Config, log logr.Logger) (view, error) {
	t, err := cfg.BuildIntTable(labeltable.WithLogger[int64](log))
	if err != nil {
		return nil, err
	}
	return &intView{table: t}, nil
}

func (r *intView) get(p string) (string, error) {
	v, err := strconv.ParseInt(p, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid point %q: %w", p, err)
	}
	e, err := r.table.GetEntry(v)
	if err != nil {
		return "", err
	}
	return entryLine(e), nil
}

func (r *intView) list(selector labels.Selector) []string {
	return entryLines(r.table.GetByLabel(selector))
}

func (r *intView) limit(s string) ([]string, error) {
	iv, err := interval.ParseInt(s)
	if err != nil {
		return nil, err
	}
	return entryLines(r.table.Limited(iv)), nil
}

func (r *intView) free() []string {
	var lines []string
	for _, iv := range r.table.Free(interval.Unbounded[int64]()) {
		lines = append(lines, iv.String())
	}
	return lines
}

func entryLine(e labeltable.Entry[int64]) string {
	return e.Interval.String() + " " + e.Value.String()
}

func entryLines(entries []labeltable.Entry[int64]) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, entryLine(e))
	}
	return lines
}

type ipView struct {
	table iptable.IPTable
}

func newIPView(cfg *config.Config, log logr.Logger) (view, error) {
	t, err := cfg.BuildIPTable(labeltable.WithLogger[netip.Addr](log))
	if err != nil {
		return nil, err
	}
	return &ipView{table: t}, nil
}

func (r *ipView) get(p string) (string, error) {
	route, err := r.table.Get(p)
	if err != nil {
		return "", err
	}
	return route.String(), nil
}

func (r *ipView) list(selector labels.Selector) []string {
	return routeLines(r.table.GetByLabel(selector))
}

func (r *ipView) limit(s string) ([]string, error) {
	routes, err := r.table.Limited(s)
	if err != nil {
		return nil, err
	}
	return routeLines(routes), nil
}

func (r *ipView) free() []string {
	var lines []string
	for _, ipRange := range r.table.Free() {
		lines = append(lines, ipRange.String())
	}
	return lines
}

func routeLines(routes iptable.Routes) []string {
	lines := make([]string, 0, len(routes))
	for _, route := range routes {
		lines = append(lines, route.String())
	}
	return lines
}
