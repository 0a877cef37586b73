// Package cli implements the bookshop command-line interface. The root
// command starts the interactive inventory menu.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	noColor   bool
	logLevel  string
}

var flags rootFlags

// NewRootCmd creates the top-level "bookshop" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookshop",
		Short: "Interactive inventory manager for a small bookshop",
		Long: `Bookshop keeps a catalog of books in memory and lets you add, list,
search, delete, edit, sort and summarize them from a numbered menu.
Choosing Exit writes the catalog to catalog.json (or bookshop.db with the
sqlite backend) in the data directory, replacing any previous export.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runShell,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/bookshop)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "directory the catalog is exported to (default: current directory)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "export backend: json or sqlite (default: from config, else json)")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: $LOG_LEVEL or warn)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// sysError marks failures outside the operator's control, such as a failed
// export at exit.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
