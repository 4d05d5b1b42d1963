// Package config resolves runtime settings: built-in defaults, overridden by
// an optional YAML file, overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// #region config-struct

// Config holds every knob the binaries need.
type Config struct {
	TelegramToken string `yaml:"telegram_token"`
	ModelPath     string `yaml:"model_path"`
	DBPath        string `yaml:"db_path"`
	Workers       int    `yaml:"workers"`

	PollTimeoutSeconds int `yaml:"poll_timeout_seconds"`
	SweepAfterMinutes  int `yaml:"sweep_after_minutes"`
	SweepEveryMinutes  int `yaml:"sweep_every_minutes"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ModelPath:          "models.json",
		DBPath:             "survey.db",
		Workers:            8,
		PollTimeoutSeconds: 30,
		SweepAfterMinutes:  120,
		SweepEveryMinutes:  15,
	}
}

// PollTimeout is the long-poll timeout for the Telegram transport.
func (c Config) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutSeconds) * time.Second
}

// SweepAfter is how long an idle session lives before the sweeper drops it.
func (c Config) SweepAfter() time.Duration {
	return time.Duration(c.SweepAfterMinutes) * time.Minute
}

// SweepEvery is the sweeper interval.
func (c Config) SweepEvery() time.Duration {
	return time.Duration(c.SweepEveryMinutes) * time.Minute
}

// #endregion config-struct

// #region load

// Load builds the config. path may be empty to skip the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.TelegramToken = envOr("TOKEN_API", cfg.TelegramToken)
	cfg.ModelPath = envOr("MODEL_PATH", cfg.ModelPath)
	cfg.DBPath = envOr("SURVEY_DB", cfg.DBPath)
	if v := os.Getenv("SURVEY_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("SURVEY_WORKERS: invalid value %q", v)
		}
		cfg.Workers = n
	}

	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion load
