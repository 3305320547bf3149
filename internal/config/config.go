// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, merging, and persistence
// helpers for Pocketkit. It uses Viper for file/env/flag parsing and
// goccy/go-yaml to write configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/pocketkit/internal/password"
)

// appName is used for the config file name, directories and the env prefix.
const appName = "pocketkit"

// Config is the complete Pocketkit configuration.
type Config struct {
	Language string         `mapstructure:"language" yaml:"language"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Tape     TapeConfig     `mapstructure:"tape" yaml:"tape"`
	// Password holds the generator defaults used by the TUI and CLI.
	Password password.Options `mapstructure:"password" yaml:"password"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// DatabaseConfig selects the backend of the calculation tape.
type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

type TapeConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Limit caps how many entries the TUI shows.
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	p := password.DefaultOptions()
	return map[string]any{
		"language":           "en",
		"log.level":          "info",
		"database.type":      "sqlite",
		"database.dsn":       "./pocketkit.db",
		"tape.enabled":       false,
		"tape.limit":         10,
		"password.length":    p.Length,
		"password.uppercase": p.Uppercase,
		"password.lowercase": p.Lowercase,
		"password.digits":    p.Digits,
		"password.symbols":   p.Symbols,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Pocketkit")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig resolves configuration from defaults, config files, the
// environment and cmd's flags, in increasing order of precedence.
//
// A config file that is missing or empty yields viper.ConfigFileNotFoundError
// together with a Config built from the remaining sources.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	// 3. An explicit --config file replaces the search paths.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	} else if isEmptyFile(v.ConfigFileUsed()) {
		notFound = viper.ConfigFileNotFoundError{}
	}

	// 6. Read from environment variables
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	// 7. Flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

func isEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Size() == 0
}

// WriteConfigFile writes c as YAML to the user (or system) config path,
// creating the directory if needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
