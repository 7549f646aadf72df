package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// ErrBasePath is returned when BASE_PATH is unset or not a directory.
var ErrBasePath = errors.New("BASE_PATH must name an existing directory")

// envKeys maps the recognised environment variables to config keys.
var envKeys = map[string]string{
	"BASE_PATH":             "base_path",
	"OUTCOMES_LOG_LEVEL":    "log_level",
	"OUTCOMES_LOG_JSON":     "log_json",
	"OUTCOMES_METRICS_FILE": "metrics_file",
}

type Config struct {
	BasePath    string `koanf:"base_path"`
	LogLevel    string `koanf:"log_level"`
	LogJSON     bool   `koanf:"log_json"`
	MetricsFile string `koanf:"metrics_file"` // prometheus textfile, optional
}

// Load reads the environment after merging dotenv (if present). Variables
// already set in the process take precedence over the dotenv file.
func Load(dotenv string) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", dotenv, err)
		}
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return Config{}, fmt.Errorf("config: env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.BasePath = strings.TrimSpace(cfg.BasePath)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.BasePath == "" {
		return fmt.Errorf("config: %w: unset", ErrBasePath)
	}
	st, err := os.Stat(c.BasePath)
	if err != nil {
		return fmt.Errorf("config: %w: %w", ErrBasePath, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("config: %w: %s is a file", ErrBasePath, c.BasePath)
	}
	return nil
}
