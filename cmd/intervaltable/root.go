package main

import (
	goflag "flag"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/klog/v2"

	"github.com/henderiw/intervaltable/pkg/config"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "intervaltable",
		Short:        "Query a table of labeled intervals",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&o.configFile, "config", "c", "", "table definition file")
	_ = cmd.MarkPersistentFlagRequired("config")

	fs := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(fs)
	cmd.PersistentFlags().AddGoFlagSet(fs)

	cmd.AddCommand(
		newGetCmd(o),
		newListCmd(o),
		newLimitCmd(o),
		newFreeCmd(o),
	)
	return cmd
}

func newGetCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <point>",
		Short: "Print the entry covering a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.load()
			if err != nil {
				return err
			}
			line, err := v.get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

func newListCmd(o *rootOptions) *cobra.Command {
	var selector string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print all entries, optionally filtered by a label selector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.load()
			if err != nil {
				return err
			}
			sel := labels.Everything()
			if selector != "" {
				if sel, err = labels.Parse(selector); err != nil {
					return fmt.Errorf("invalid selector %q: %w", selector, err)
				}
			}
			return printLines(cmd.OutOrStdout(), v.list(sel))
		},
	}
	cmd.Flags().StringVarP(&selector, "selector", "l", "", "label selector, e.g. tenant=a")
	return cmd
}

func newLimitCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "limit <interval>",
		Short: "Print the entries clipped to an interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.load()
			if err != nil {
				return err
			}
			lines, err := v.limit(args[0])
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), lines)
		},
	}
}

func newFreeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "free",
		Short: "Print the unclaimed parts of the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.load()
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), v.free())
		},
	}
}

func (r *rootOptions) load() (view, error) {
	cfg, err := config.Load(r.configFile)
	if err != nil {
		return nil, err
	}
	log := klog.NewKlogr().WithValues("config", r.configFile)
	log.V(2).Info("loaded", "kind", cfg.Kind, "entries", len(cfg.Entries))
	return newView(cfg, log)
}

func newView(cfg *config.Config, log logr.Logger) (view, error) {
	switch cfg.Kind {
	case config.KindIP:
		return newIPView(cfg, log)
	default:
		return newIntView(cfg, log)
	}
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
