// SPDX-License-Identifier: MPL-2.0

// Package config loads the optional user configuration for modgraph from
// the platform config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "modgraph"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix is the prefix for environment variable overrides
	// (MODGRAPH_OUTPUT etc.).
	EnvPrefix = "MODGRAPH"
)

// Config is the user-tunable configuration. Every field has a working
// default; a missing config file is not an error.
type Config struct {
	// Output is the default path for the generated DOT file, used when
	// no --output flag is given.
	Output string `mapstructure:"output"`
	// Ignore lists extra mod identifiers to exclude from the graph, on
	// top of the built-in platform/loader set.
	Ignore []string `mapstructure:"ignore"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{Output: "mods.dot"}
}

var (
	// configDirOverride lets tests point config loading at a temp dir.
	configDirOverride string
	// configFileOverride is set from the --config flag.
	configFileOverride string
)

// SetConfigDirOverride overrides the platform config directory. Tests use
// this; pass "" to restore the default behavior.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride points loading at an explicit config file.
func SetConfigFilePathOverride(path string) {
	configFileOverride = path
}

// ConfigDir returns the modgraph configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration. A missing config file yields the defaults;
// a malformed one is an error. An explicit --config path that does not
// exist is also an error, since the user asked for that file.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output", defaults.Output)
	v.SetDefault("ignore", defaults.Ignore)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFileOverride != "" {
		v.SetConfigFile(configFileOverride)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFileOverride, err)
		}
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
