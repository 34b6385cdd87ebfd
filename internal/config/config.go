// Package config loads the application configuration from YAML.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color modes accepted by the color key and the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// AppConfig defines the global git-status-tree configuration options.
type AppConfig struct {
	// Color is one of "auto", "always" or "never". Auto enables color
	// only when stdout is a terminal.
	Color string `yaml:"color"`
	// Icons renders Nerd Font devicons next to entries.
	Icons bool `yaml:"icons"`
	// DebugLog is a file path receiving debug traces.
	DebugLog string `yaml:"debug_log"`
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Color: ColorAuto,
	}
}

// ValidColorMode reports whether mode is an accepted color setting.
func ValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// LoadConfig reads the configuration file. With an empty path it looks
// for config.yaml / config.yml under the user config directory. A
// missing file yields the defaults; an unreadable or malformed file
// yields the defaults plus the error so the caller can warn and keep
// going.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string
	if configPath != "" {
		paths = []string{configPath}
	} else {
		base := filepath.Join(configDir(), "git-status-tree")
		paths = []string{
			filepath.Join(base, "config.yaml"),
			filepath.Join(base, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- the path is the user's own config file
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultConfig(), err
		}

		cfg := DefaultConfig()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return DefaultConfig(), err
		}
		cfg.normalize()
		return cfg, nil
	}

	return DefaultConfig(), nil
}

func (c *AppConfig) normalize() {
	if !ValidColorMode(c.Color) {
		c.Color = ColorAuto
	}
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
