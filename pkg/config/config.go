// Package config loads minibox settings from defaults, an optional config
// file and MINIBOX_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rcarmo/go-minibox/pkg/core/perm"
	"github.com/rcarmo/go-minibox/pkg/logging"
	"github.com/rcarmo/go-minibox/pkg/sandbox"
)

// AppName names the config directory and the environment prefix.
const AppName = "minibox"

// Config is the full minibox configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Chmod   ChmodConfig   `mapstructure:"chmod"`
	Grep    GrepConfig    `mapstructure:"grep"`
	Sandbox SandboxConfig `mapstructure:"sandbox"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ChmodConfig controls chmod's '-' operator.
type ChmodConfig struct {
	// Subtract is "toggle" (flip the bits) or "clear" (remove them).
	Subtract string `mapstructure:"subtract"`
}

// GrepConfig controls grep's flag dialect.
type GrepConfig struct {
	// POSIX makes -i ignore case instead of inverting the match.
	POSIX bool `mapstructure:"posix"`
}

// SandboxConfig restricts the paths applets may touch.
type SandboxConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	AllowCwd  bool     `mapstructure:"allow_cwd"`
	ReadWrite []string `mapstructure:"read_write"`
	ReadOnly  []string `mapstructure:"read_only"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "warn", Format: logging.FormatAuto},
		Chmod:   ChmodConfig{Subtract: "toggle"},
		Sandbox: SandboxConfig{AllowCwd: true},
	}
}

// Dir returns $XDG_CONFIG_HOME/minibox, defaulting to ~/.config/minibox.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// Load reads the configuration. An explicit path must exist; without one,
// config.{yaml,toml,json} in Dir is used when present.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("chmod.subtract", defaults.Chmod.Subtract)
	v.SetDefault("grep.posix", defaults.Grep.POSIX)
	v.SetDefault("sandbox.enabled", defaults.Sandbox.Enabled)
	v.SetDefault("sandbox.allow_cwd", defaults.Sandbox.AllowCwd)
	v.SetDefault("sandbox.read_write", defaults.Sandbox.ReadWrite)
	v.SetDefault("sandbox.read_only", defaults.Sandbox.ReadOnly)

	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config file not found: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if dir, err := Dir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.Subtraction(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Subtraction returns the parsed chmod.subtract setting.
func (c Config) Subtraction() (perm.Subtraction, error) {
	sub, err := perm.ParseSubtraction(c.Chmod.Subtract)
	if err != nil {
		return sub, fmt.Errorf("chmod.subtract: %w", err)
	}
	return sub, nil
}

// SandboxRules converts the sandbox section into guard settings. ok is false
// when the sandbox is disabled.
func (c Config) SandboxRules() (cfg sandbox.Config, ok bool) {
	if !c.Sandbox.Enabled {
		return sandbox.Config{}, false
	}
	cfg.AllowCwd = c.Sandbox.AllowCwd
	for _, root := range c.Sandbox.ReadWrite {
		cfg.Rules = append(cfg.Rules, sandbox.Rule{Root: root, Access: sandbox.AccessRead | sandbox.AccessWrite})
	}
	for _, root := range c.Sandbox.ReadOnly {
		cfg.Rules = append(cfg.Rules, sandbox.Rule{Root: root, Access: sandbox.AccessRead})
	}
	return cfg, true
}
