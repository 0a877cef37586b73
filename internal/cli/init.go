package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/bookshop/internal/paths"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
	Color   bool   `yaml:"color"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml and create the data directory",
		Long:  "Create the configuration directory with a config.yaml (if missing) and the data directory the catalog is exported to.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return &sysError{err: fmt.Errorf("resolve config dir: %w", err)}
	}

	backend := flags.backend
	if backend == "" {
		backend = defaultBackend
	}
	cfg := types.Config{Backend: backend, DataDir: flags.dataDir}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid backend %q: %w", backend, err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return &sysError{err: fmt.Errorf("create config directory: %w", err)}
	}

	configPath := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath, cfg, !flags.noColor)
	if err != nil {
		return &sysError{err: fmt.Errorf("write config: %w", err)}
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, "")
	if err != nil {
		return &sysError{err: fmt.Errorf("resolve data dir: %w", err)}
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return &sysError{err: fmt.Errorf("create data directory: %w", err)}
	}

	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Keeping existing %s\n", configPath)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Bookshop initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml if the file does not exist and
// reports whether it wrote one. An existing file is left untouched.
func writeConfigIfMissing(path string, cfg types.Config, color bool) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		Backend: cfg.Backend,
		DataDir: cfg.DataDir,
		Color:   color,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
