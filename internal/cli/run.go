package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/console"
	"github.com/mesh-intelligence/bookshop/internal/export"
	"github.com/mesh-intelligence/bookshop/internal/logging"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive inventory menu",
		Long:  "Start the interactive inventory menu. This is also what bookshop does with no subcommand.",
		Args:  cobra.NoArgs,
		RunE:  runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:   flags.logLevel,
		NoColor: !s.color,
		Output:  cmd.ErrOrStderr(),
	})
	log.Debug().
		Str("backend", s.config.Backend).
		Str("data_dir", s.config.DataDir).
		Msg("starting bookshop")

	exp, err := export.New(s.config, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	shell := console.NewShell(console.Options{
		In:       cmd.InOrStdin(),
		Out:      out,
		Exporter: exp,
		Styler:   console.NewStyler(console.ColorEnabled(out, !s.color)),
		Logger:   log,
	})
	if err := shell.Run(cmd.Context()); err != nil {
		return &sysError{err: err}
	}
	return nil
}
