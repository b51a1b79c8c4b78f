package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sbnative/sbnative/pkg/linebreak"
	"github.com/sbnative/sbnative/pkg/term"
)

type fmtOptions struct {
	width    int
	fraction float64
	indent   int
	expanded bool
	compact  bool
}

func newFmtCmd(a *app) *cobra.Command {
	var opts fmtOptions

	cmd := &cobra.Command{
		Use:   "fmt [value|name=value]...",
		Short: "Print an argument list, opened over several lines when it is too wide",
		Long: `Print the given values as an argument list. Words of the form name=value
become named arguments. The list is kept on one line unless it is wider than
the configured fraction of the terminal, in which case every element gets its
own indented line.`,
		RunE: func(cmd *cobra.Command, words []string) error {
			return runFmt(cmd, a, opts, words)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "terminal width to fit (default: current terminal)")
	cmd.Flags().Float64Var(&opts.fraction, "fraction", 0, "share of the width the line may use (default: from config)")
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "spaces per nesting level (default: from config)")
	cmd.Flags().BoolVar(&opts.expanded, "expanded", false, "always open the list")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "never open the list")
	cmd.MarkFlagsMutuallyExclusive("expanded", "compact")
	return cmd
}

func runFmt(cmd *cobra.Command, a *app, opts fmtOptions, words []string) error {
	format := a.cfg.Format.Options()
	if opts.indent != 0 {
		if opts.indent < 1 {
			return errors.Newf("indent must be at least 1, got %d", opts.indent)
		}
		format.IndentUnit = opts.indent
	}

	fraction := a.cfg.Format.MaxWidthFraction
	if opts.fraction != 0 {
		fraction = opts.fraction
	}
	width := opts.width
	if width <= 0 {
		width = term.Width()
	}

	args, named := parseArgs(words)
	parts := linebreak.FlattenMarked(args, named)
	compact := linebreak.Compact(parts)

	expand := linebreak.Overflows(linebreak.Measure{Args: linebreak.Width(compact)}, width, fraction)
	switch {
	case opts.expanded:
		expand = true
	case opts.compact:
		expand = false
	}

	a.logger.Debug().Int("width", width).Float64("fraction", fraction).Bool("expanded", expand).Msg("Rendering arguments")

	out := compact
	if expand {
		out = linebreak.Expand(parts, format)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
