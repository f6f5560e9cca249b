package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	Port          int    `yaml:"port,omitempty"`
	SessionSecret string `yaml:"session_secret,omitempty"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "erooms", "config.yaml"), nil
}

// loadCLIConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadCLIConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveCLIConfig writes the CLI config to disk.
func saveCLIConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getSessionSecret returns the session signing secret from env var,
// config file, or a development default.
func getSessionSecret() string {
	if v := os.Getenv("EROOMS_SESSION_SECRET"); v != "" {
		return v
	}
	cfg, err := loadCLIConfig()
	if err == nil && cfg.SessionSecret != "" {
		return cfg.SessionSecret
	}
	return "erooms-dev-secret"
}

// getPort returns the serve port from env var, config file, or the
// default 8080. A --port flag overrides all three.
func getPort() int {
	if v := os.Getenv("EROOMS_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			return port
		}
	}
	cfg, err := loadCLIConfig()
	if err == nil && cfg.Port > 0 {
		return cfg.Port
	}
	return 8080
}
