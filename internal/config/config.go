// Package config loads jobmail settings from an optional .env file and
// JOBMAIL_* environment variables. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envPrefix   = "JOBMAIL_"
	logSubdir   = "jobmail"
	logFileName = "jobmail.log"
)

// Config is the runtime configuration of the jobmail CLI.
type Config struct {
	// Endpoint overrides the generation service URL; empty uses the default.
	Endpoint  string       `env:"ENDPOINT"`
	AltScreen bool         `env:"ALT_SCREEN" envDefault:"true"`
	Logger    LoggerConfig `envPrefix:"LOG_"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	// Output is stderr, stdout or a file path. Empty means DefaultLogPath.
	Output string `env:"FILE"`
}

// Load reads the given dotenv files (".env" when none are given), then parses
// the environment. Missing dotenv files are ignored; variables already set in
// the environment win over dotenv values.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, path := range dotenvFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if strings.TrimSpace(cfg.Logger.Output) == "" {
		cfg.Logger.Output = DefaultLogPath()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the logger cannot honor.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logger.Level)
	}
	switch strings.ToLower(c.Logger.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Logger.Format)
	}
	return nil
}

// DefaultLogPath places the log under the user cache directory. The terminal
// belongs to the UI, so logs never go to stderr by default.
func DefaultLogPath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, logSubdir, logFileName)
}
