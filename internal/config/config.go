package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvLogLevel  = "CHECKERS_LOG_LEVEL"
	EnvLogFormat = "CHECKERS_LOG_FORMAT"
	EnvInput     = "CHECKERS_INPUT"
)

type Config struct {
	LogLevel  string // zerolog level name
	LogFormat string // "console" or "json"
	Input     string // move file; empty reads stdin
}

func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Load reads the given dotenv files (".env" when none are given) into the
// process environment and builds a Config from it. Missing files are fine;
// variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup(EnvInput); ok {
		cfg.Input = v
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%s: unknown log format %q", EnvLogFormat, c.LogFormat)
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
