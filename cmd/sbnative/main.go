package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sbnative/sbnative/pkg/config"
	"github.com/sbnative/sbnative/pkg/logs"
)

// app carries what every subcommand needs once the root command has loaded
// the configuration.
type app struct {
	fs         afero.Fs
	configPath string
	cfg        *config.Config
	logger     zerolog.Logger
	closer     io.Closer
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "sbnative",
		Short:         "Render argument lists the way the debug logger does",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: search ., ./config and the user config dir)")

	root.AddCommand(newFmtCmd(a))
	root.AddCommand(newLogCmd(a))
	root.AddCommand(newPlotCmd(a))
	root.AddCommand(newConfigCmd(a))
	return root
}

func (a *app) load(errOut io.Writer) error {
	cfg, err := config.Load(a.configPath, a.fs, logs.NewLogger(errOut, true))
	if err != nil {
		return err
	}

	logger, closer, err := logs.FromConfig(cfg.Logging, errOut, a.fs)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.closer = closer
	a.logger.Debug().Str("config", a.configPath).Msg("Configuration loaded")
	return nil
}

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
