package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ModelPath != "models.json" {
		t.Fatalf("ModelPath = %q", cfg.ModelPath)
	}
	if cfg.DBPath != "survey.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.PollTimeout() != 30*time.Second {
		t.Fatalf("PollTimeout = %s", cfg.PollTimeout())
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "model_path: /opt/models.json\nworkers: 4\nsweep_after_minutes: 30\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ModelPath != "/opt/models.json" {
		t.Fatalf("ModelPath = %q", cfg.ModelPath)
	}
	if cfg.Workers != 4 {
		t.Fatalf("Workers = %d", cfg.Workers)
	}
	if cfg.SweepAfter() != 30*time.Minute {
		t.Fatalf("SweepAfter = %s", cfg.SweepAfter())
	}
	// Untouched keys keep defaults.
	if cfg.DBPath != "survey.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model_path: from-file.json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MODEL_PATH", "from-env.json")
	t.Setenv("TOKEN_API", "secret-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ModelPath != "from-env.json" {
		t.Fatalf("ModelPath = %q", cfg.ModelPath)
	}
	if cfg.TelegramToken != "secret-token" {
		t.Fatalf("TelegramToken = %q", cfg.TelegramToken)
	}
}

func TestBadWorkerCount(t *testing.T) {
	t.Setenv("SURVEY_WORKERS", "zero")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for non-numeric SURVEY_WORKERS")
	}
}

func TestMissingConfigFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
