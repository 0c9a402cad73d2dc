package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileOverlay mirrors BrowserConfig as it appears in a YAML file.
// Headless is a pointer so an explicit false can be told apart from absence.
type fileOverlay struct {
	BaseURL     string        `yaml:"base_url"`
	Driver      string        `yaml:"driver"`
	BrowserName string        `yaml:"browser"`
	Headless    *bool         `yaml:"headless"`
	SlowMo      time.Duration `yaml:"slow_mo"`
	Timeouts    Timeouts      `yaml:"timeouts"`
	LogLevel    string        `yaml:"log_level"`
	Credentials Credentials   `yaml:"credentials"`
}

// MergeFile loads a YAML file and merges its non-zero fields into cfg.
// Credentials found in the file are returned; they are nil when the file has none.
func MergeFile(path string, cfg *BrowserConfig) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var overlay fileOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	mergeBrowserConfig(cfg, &overlay)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if overlay.Credentials.Email == "" && overlay.Credentials.Password == "" {
		return nil, nil
	}
	return &overlay.Credentials, nil
}

func mergeBrowserConfig(base *BrowserConfig, override *fileOverlay) {
	if override.BaseURL != "" {
		base.BaseURL = override.BaseURL
	}
	if override.Driver != "" {
		base.Driver = override.Driver
	}
	if override.BrowserName != "" {
		base.BrowserName = override.BrowserName
	}
	if override.Headless != nil {
		base.Headless = *override.Headless
	}
	if override.SlowMo != 0 {
		base.SlowMo = override.SlowMo
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	if override.Timeouts.Action != 0 {
		base.Timeouts.Action = override.Timeouts.Action
	}
	if override.Timeouts.Probe != 0 {
		base.Timeouts.Probe = override.Timeouts.Probe
	}
	if override.Timeouts.Assert != 0 {
		base.Timeouts.Assert = override.Timeouts.Assert
	}
	if override.Timeouts.Settle != 0 {
		base.Timeouts.Settle = override.Timeouts.Settle
	}
}
