package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sbnative/sbnative/pkg/runtimetools"
	"github.com/sbnative/sbnative/pkg/timeplot"
)

type plotOptions struct {
	out     string
	sort    string
	reverse bool
}

func newPlotCmd(a *app) *cobra.Command {
	var opts plotOptions

	cmd := &cobra.Command{
		Use:   "plot n...",
		Short: "Time a summing loop for every n and write the timings as an HTML page",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, words []string) error {
			return runPlot(cmd, a, opts, words)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "temp", "directory the page is written to")
	cmd.Flags().StringVar(&opts.sort, "sort", "args", "order of the rows (time|args)")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "reverse the order")
	return cmd
}

func runPlot(cmd *cobra.Command, a *app, opts plotOptions, words []string) error {
	var key timeplot.SortKey
	switch opts.sort {
	case "time":
		key = timeplot.ByTime
	case "args":
		key = timeplot.ByArgs
	default:
		return errors.Newf("unknown sort order %q", opts.sort)
	}

	p := timeplot.NewWithLogger(key, []int{0}, opts.reverse, a.logger)
	sum, err := p.Track(func(args ...any) any {
		total := 0
		for i := range args[0].(int) {
			total += i
		}
		return total
	})
	if err != nil {
		return err
	}

	for _, w := range words {
		n, err := runtimetools.Cast[int](w)
		if err != nil {
			return err
		}
		sum(n)
	}

	path, err := p.Show(a.fs, opts.out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
