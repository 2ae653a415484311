// ABOUTME: Runtime configuration loaded from the environment
// ABOUTME: Reads an optional .env file, then GIGDESK_* variables, with XDG defaults for paths
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppName names the data directory under XDG_DATA_HOME.
const AppName = "gigdesk"

type Config struct {
	LogLevel string `env:"GIGDESK_LOG_LEVEL" envDefault:"warn"`

	// DataDir enables the snapshot archive when set. Persist with an empty
	// DataDir selects DefaultDataDir.
	DataDir string `env:"GIGDESK_DATA_DIR"`
	Persist bool   `env:"GIGDESK_PERSIST"`

	// AutoSave archives after every mutation rather than only on exit.
	AutoSave bool `env:"GIGDESK_AUTO_SAVE" envDefault:"true"`

	// UserName overrides the profile name of a freshly seeded store.
	UserName string `env:"GIGDESK_USER_NAME"`
}

// DefaultDataDir is where the archive lives when no directory is configured.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Load reads envFiles (".env" when none are given) into the process
// environment without overriding it, then parses the environment.
// Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Persist && cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	return cfg, nil
}

// StorageEnabled reports whether a data directory is configured.
func (c Config) StorageEnabled() bool {
	return c.DataDir != ""
}
