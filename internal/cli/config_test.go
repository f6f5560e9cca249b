package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCLIConfigSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg := CLIConfig{
		Port:          9090,
		SessionSecret: "topsecret",
	}

	if err := saveCLIConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	path := filepath.Join(tmp, ".config", "erooms", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not found: %v", err)
	}

	loaded, err := loadCLIConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Port != cfg.Port {
		t.Errorf("port = %d, want %d", loaded.Port, cfg.Port)
	}
	if loaded.SessionSecret != cfg.SessionSecret {
		t.Errorf("session_secret = %q, want %q", loaded.SessionSecret, cfg.SessionSecret)
	}
}

func TestCLIConfigLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadCLIConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.Port != 0 || cfg.SessionSecret != "" {
		t.Error("expected zero-value config for missing file")
	}
}

func TestGetSessionSecretFromEnv(t *testing.T) {
	t.Setenv("EROOMS_SESSION_SECRET", "env-secret")
	t.Setenv("HOME", t.TempDir())

	if got := getSessionSecret(); got != "env-secret" {
		t.Errorf("secret = %q, want env-secret", got)
	}
}

func TestGetSessionSecretDefault(t *testing.T) {
	t.Setenv("EROOMS_SESSION_SECRET", "")
	t.Setenv("HOME", t.TempDir())

	if got := getSessionSecret(); got != "erooms-dev-secret" {
		t.Errorf("secret = %q, want the dev default", got)
	}
}

func TestGetPortFromEnv(t *testing.T) {
	t.Setenv("EROOMS_PORT", "3000")
	t.Setenv("HOME", t.TempDir())

	if got := getPort(); got != 3000 {
		t.Errorf("port = %d, want 3000", got)
	}
}

func TestGetPortFromConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("EROOMS_PORT", "")

	if err := saveCLIConfig(CLIConfig{Port: 9999}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := getPort(); got != 9999 {
		t.Errorf("port = %d, want 9999", got)
	}
}

func TestGetPortDefault(t *testing.T) {
	t.Setenv("EROOMS_PORT", "")
	t.Setenv("HOME", t.TempDir())

	if got := getPort(); got != 8080 {
		t.Errorf("port = %d, want 8080", got)
	}
}

func TestGetPortIgnoresGarbageEnv(t *testing.T) {
	t.Setenv("EROOMS_PORT", "not-a-port")
	t.Setenv("HOME", t.TempDir())

	if got := getPort(); got != 8080 {
		t.Errorf("port = %d, want 8080 fallback", got)
	}
}
