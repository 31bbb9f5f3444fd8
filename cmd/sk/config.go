package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/syskit/pkg/sys"
)

// config holds the sk configuration options.
type config struct {
	// ReportPath is the default destination for --report output.
	ReportPath string `json:"report_path"`

	// RetryInterrupts controls whether signal-interrupted calls are
	// retried.
	RetryInterrupts *bool `json:"retry_interrupts"`

	// MaxRetryAttempts bounds interruption retries; zero keeps the
	// library default.
	MaxRetryAttempts int `json:"max_retry_attempts"`
}

// retryPolicy translates the config knobs into the library policy, keeping
// the library defaults for anything unset.
func (c config) retryPolicy() sys.RetryPolicy {
	policy := sys.DefaultRetry

	if c.RetryInterrupts != nil {
		policy.RetryInterrupts = *c.RetryInterrupts
	}

	if c.MaxRetryAttempts != 0 {
		policy.MaxAttempts = c.MaxRetryAttempts
	}

	return policy
}

// configFileName is the project-level config file name.
const configFileName = ".sk.json"

// loadConfig loads configuration with the project file (.sk.json) taking
// precedence over the per-user file ($XDG_CONFIG_HOME/sk/config.json or
// ~/.config/sk/config.json). Missing files are fine; malformed ones are not.
func loadConfig(xdgConfigHome string) (config, error) {
	var cfg config

	if path := globalConfigPath(xdgConfigHome); path != "" {
		global, err := loadConfigFile(path)
		if err != nil {
			return config{}, err
		}

		cfg = mergeConfig(cfg, global)
	}

	project, err := loadConfigFile(configFileName)
	if err != nil {
		return config{}, err
	}

	return mergeConfig(cfg, project), nil
}

func globalConfigPath(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "sk", "config.json")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "sk", "config.json")
}

func loadConfigFile(path string) (config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return config{}, nil
		}

		return config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func parseConfig(data []byte) (config, error) {
	// Standardize JWCC (comments, trailing commas) to plain JSON.
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg config

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	if cfg.MaxRetryAttempts < 0 {
		return config{}, fmt.Errorf("max_retry_attempts must not be negative")
	}

	return cfg, nil
}

func mergeConfig(base, overlay config) config {
	if overlay.ReportPath != "" {
		base.ReportPath = overlay.ReportPath
	}

	if overlay.RetryInterrupts != nil {
		base.RetryInterrupts = overlay.RetryInterrupts
	}

	if overlay.MaxRetryAttempts != 0 {
		base.MaxRetryAttempts = overlay.MaxRetryAttempts
	}

	return base
}
