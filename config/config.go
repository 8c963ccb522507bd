// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

// Package config loads, saves and validates the ecopayout node configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding file values,
// e.g. ECOPAYOUT_NETWORK.
const EnvPrefix = "ECOPAYOUT"

// Config holds the settings of the ecopayout command.
type Config struct {
	DataDir     string `mapstructure:"datadir" yaml:"datadir" validate:"required"`
	Network     string `mapstructure:"network" yaml:"network" validate:"oneof=mainnet testnet regtest"`
	LogLevel    string `mapstructure:"loglevel" yaml:"loglevel" validate:"oneof=debug info warn error"`
	LogFormat   string `mapstructure:"logformat" yaml:"logformat" validate:"oneof=text json"`
	MetricsAddr string `mapstructure:"metrics" yaml:"metrics,omitempty" validate:"omitempty,hostname_port"`
}

// DefaultDataDir returns ~/.ecopayout, or .ecopayout when the home directory
// cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ecopayout"
	}
	return filepath.Join(home, ".ecopayout")
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		DataDir:   DefaultDataDir(),
		Network:   "mainnet",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// ConfigPath returns the configuration file location inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config.yaml")
}

// DBPath returns the contract database location inside the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "contract.db")
}

// LoadConfig reads the YAML file at path on top of DefaultConfig. Environment
// variables prefixed with EnvPrefix override file values.
func LoadConfig(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("config: stat %s: %w", path, err)
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// FromEnv returns DefaultConfig with environment overrides applied. It is
// used when no configuration file exists.
func FromEnv() (Config, error) {
	var cfg Config
	if err := newViper().Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("datadir", def.DataDir)
	v.SetDefault("network", def.Network)
	v.SetDefault("loglevel", def.LogLevel)
	v.SetDefault("logformat", def.LogFormat)
	v.SetDefault("metrics", def.MetricsAddr)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SaveConfig writes cfg to path as YAML, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	content := append([]byte("# ecopayout configuration\n"), data...)

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
