package main

import (
	"github.com/spf13/cobra"

	"github.com/sbnative/sbnative/pkg/debug"
	"github.com/sbnative/sbnative/pkg/term"
)

type logOptions struct {
	info  string
	end   string
	width int
	color bool
}

func newLogCmd(a *app) *cobra.Command {
	var opts logOptions

	cmd := &cobra.Command{
		Use:   "log [value|name=value]...",
		Short: "Print the values as a debug log record",
		RunE: func(cmd *cobra.Command, words []string) error {
			s := debug.NewSession(a.cfg, cmd.OutOrStdout())
			s.Mirror = &a.logger
			if opts.width > 0 {
				s.Width = term.Fixed(opts.width)
			}
			if cmd.Flags().Changed("color") {
				s.Color = opts.color
			}

			args, named := parseArgs(words)
			entry := debug.Entry{Args: args, Named: named, End: opts.end}
			if cmd.Flags().Changed("info") {
				entry.Info = opts.info
				entry.HasInfo = true
			}
			s.Emit(0, entry)
			return s.Close()
		},
	}

	cmd.Flags().StringVar(&opts.info, "info", "", "label printed before the values")
	cmd.Flags().StringVar(&opts.end, "end", "", "text printed after the values")
	cmd.Flags().IntVar(&opts.width, "width", 0, "terminal width to fit (default: current terminal)")
	cmd.Flags().BoolVar(&opts.color, "color", false, "highlight the record (default: from config)")
	return cmd
}
