package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/bookshop/internal/paths"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"
	cfgKeyColor   = "color"

	defaultBackend = types.BackendJSON
)

// envFiles are loaded in order; variables already set are not overridden.
var envFiles = []string{".env", ".env.local"}

// settings is the resolved runtime configuration for a command.
type settings struct {
	config types.Config
	color  bool
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyColor, true)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.BindEnv(cfgKeyBackend, "BOOKSHOP_BACKEND"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv(cfgKeyColor, "BOOKSHOP_COLOR"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// loadEnvFiles loads .env files from the working directory if present.
func loadEnvFiles() {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}

// resolveSettings combines flags, environment, and config.yaml into the
// settings for a run. Flags win over environment, which wins over
// config.yaml.
func resolveSettings() (settings, error) {
	loadEnvFiles()

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return settings{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, err
	}

	backend := flags.backend
	if backend == "" {
		backend = v.GetString(cfgKeyBackend)
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{Backend: backend, DataDir: dataDir}
	if err := cfg.Validate(); err != nil {
		return settings{}, fmt.Errorf("invalid backend %q: %w", backend, err)
	}

	return settings{
		config: cfg,
		color:  v.GetBool(cfgKeyColor) && !flags.noColor,
	}, nil
}
