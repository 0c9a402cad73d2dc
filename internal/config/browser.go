package config

import (
	"fmt"
	"strconv"
	"time"
)

// Supported driver backends
const (
	DriverPlaywright = "playwright"
	DriverRod        = "rod"
)

// Supported browser engines
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// Timeouts holds the bounded waits used by the action and validation protocols
type Timeouts struct {
	// Action bounds the visibility wait before click/fill/select
	Action time.Duration `yaml:"action"`
	// Probe bounds non-failing visibility checks
	Probe time.Duration `yaml:"probe"`
	// Assert bounds retrying validations
	Assert time.Duration `yaml:"assert"`
	// Settle bounds the wait for network idle
	Settle time.Duration `yaml:"settle"`
}

// DefaultTimeouts returns the protocol defaults
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Action: 10 * time.Second,
		Probe:  5 * time.Second,
		Assert: 5 * time.Second,
		Settle: 30 * time.Second,
	}
}

// BrowserConfig holds configuration for driving the storefront in a browser
type BrowserConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Driver      string        `yaml:"driver"`
	BrowserName string        `yaml:"browser"`
	Headless    bool          `yaml:"headless"`
	SlowMo      time.Duration `yaml:"slow_mo"`
	Timeouts    Timeouts      `yaml:"timeouts"`
	LogLevel    string        `yaml:"log_level"`
}

// LoadBrowserConfig loads browser configuration from environment variables
func LoadBrowserConfig(getenv func(string) string) (*BrowserConfig, error) {
	cfg, err := readBrowserEnv(getenv)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadBrowserConfigWithFile loads the environment, then overlays the YAML file
// at path. Required fields may come from either source.
func LoadBrowserConfigWithFile(getenv func(string) string, path string) (*BrowserConfig, *Credentials, error) {
	cfg, err := readBrowserEnv(getenv)
	if err != nil {
		return nil, nil, err
	}
	creds, err := MergeFile(path, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, creds, nil
}

func readBrowserEnv(getenv func(string) string) (*BrowserConfig, error) {
	cfg := &BrowserConfig{
		BaseURL:     getenv("BASE_URL"),
		Driver:      getenv("BROWSER_DRIVER"),
		BrowserName: getenv("BROWSER_NAME"),
		Headless:    true,
		Timeouts:    DefaultTimeouts(),
		LogLevel:    getenv("LOG_LEVEL"),
	}

	if v := getenv("HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HEADLESS %q: %w", v, err)
		}
		cfg.Headless = headless
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SLOW_MO", &cfg.SlowMo},
		{"ACTION_TIMEOUT", &cfg.Timeouts.Action},
		{"PROBE_TIMEOUT", &cfg.Timeouts.Probe},
		{"ASSERT_TIMEOUT", &cfg.Timeouts.Assert},
		{"SETTLE_TIMEOUT", &cfg.Timeouts.Settle},
	}
	for _, d := range durations {
		v := getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", d.key, v, err)
		}
		*d.dst = parsed
	}

	return cfg, nil
}

// Validate fills defaults and checks required fields
func (c *BrowserConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if c.Driver == "" {
		c.Driver = DriverPlaywright
	}
	if c.BrowserName == "" {
		c.BrowserName = BrowserChromium
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	switch c.Driver {
	case DriverPlaywright, DriverRod:
	default:
		return fmt.Errorf("unsupported BROWSER_DRIVER %q", c.Driver)
	}

	switch c.BrowserName {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return fmt.Errorf("unsupported BROWSER_NAME %q", c.BrowserName)
	}
	if c.Driver == DriverRod && c.BrowserName != BrowserChromium {
		return fmt.Errorf("driver %s only supports %s", DriverRod, BrowserChromium)
	}

	for name, d := range map[string]time.Duration{
		"action": c.Timeouts.Action,
		"probe":  c.Timeouts.Probe,
		"assert": c.Timeouts.Assert,
		"settle": c.Timeouts.Settle,
	} {
		if d <= 0 {
			return fmt.Errorf("%s timeout must be positive", name)
		}
	}

	return nil
}
