// Package config provides configuration loading, validation, and
// hot-reload for holoterm.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/holoterm/holoterm/internal/errors"
	"github.com/holoterm/holoterm/internal/fileperms"
	"github.com/holoterm/holoterm/internal/logging"
)

// Config represents the application configuration
type Config struct {
	// FrameRate is the hologram animation tick interval
	FrameRate string `mapstructure:"frameRate" yaml:"frameRate"`

	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Bridge  BridgeConfig  `mapstructure:"bridge" yaml:"bridge"`
	History HistoryConfig `mapstructure:"history" yaml:"history"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// UIConfig holds terminal surface settings
type UIConfig struct {
	Prompt   string `mapstructure:"prompt" yaml:"prompt"`
	Sound    bool   `mapstructure:"sound" yaml:"sound"`
	PowerUps bool   `mapstructure:"powerUps" yaml:"powerUps"`
	Mouse    bool   `mapstructure:"mouse" yaml:"mouse"`
}

// BridgeConfig holds settings for the external computation and search
// services
type BridgeConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	BaseURL string `mapstructure:"baseUrl" yaml:"baseUrl"`
	Timeout string `mapstructure:"timeout" yaml:"timeout"`
}

// HistoryConfig holds command history settings
type HistoryConfig struct {
	Size int `mapstructure:"size" yaml:"size"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// DefaultConfig returns a configuration with sensible defaults.
// These values must match setDefaults for consistent behavior.
func DefaultConfig() *Config {
	return &Config{
		FrameRate: "80ms",
		UI: UIConfig{
			Prompt:   "> ",
			Sound:    true,
			PowerUps: true,
			Mouse:    false,
		},
		Bridge: BridgeConfig{
			Enabled: true,
			BaseURL: "https://api.holoterm.dev",
			Timeout: "10s",
		},
		History: HistoryConfig{
			Size: 100,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Dir returns the holoterm configuration directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".holoterm")
	}
	return filepath.Join(home, ".holoterm")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Loader owns the viper instance so callers can reload and watch the
// same file they loaded from.
type Loader struct {
	v    *viper.Viper
	path string
}

// NewLoader creates a loader for the given config file path; an empty
// path uses the default search locations.
func NewLoader(path string) *Loader {
	return &Loader{v: viper.New(), path: path}
}

// Load reads configuration from file and environment. A missing config
// file is not an error; defaults and HOLOTERM_* variables apply.
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	if l.path != "" {
		l.v.SetConfigFile(l.path)
	} else {
		l.v.AddConfigPath(".")
		l.v.AddConfigPath(Dir())
	}

	l.v.SetEnvPrefix("HOLOTERM")
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	setDefaults(l.v)

	if err := l.v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFoundErr) && !os.IsNotExist(err) {
			return nil, errors.ConfigLoad(l.v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, errors.ConfigLoad(l.v.ConfigFileUsed(), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	_ = os.MkdirAll(Dir(), fileperms.ConfigDir)

	return cfg, nil
}

// Watch re-reads the config whenever the file changes and hands the
// fresh Config to onChange. Unparseable edits are logged and skipped so
// a half-saved file cannot take the session down.
func (l *Loader) Watch(onChange func(*Config)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		logging.Debugf("Config file changed: %s (%s)", e.Name, e.Op)

		cfg := &Config{}
		if err := l.v.Unmarshal(cfg); err != nil {
			logging.WithError(err).Warn().Msg("Ignoring config reload")
			return
		}
		if err := cfg.Validate(); err != nil {
			logging.WithError(err).Warn().Msg("Ignoring invalid config reload")
			return
		}
		onChange(cfg)
	})
	l.v.WatchConfig()
}

// Load reads configuration using the default search paths.
func Load() (*Config, error) {
	return NewLoader("").Load()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("frameRate", "80ms")

	v.SetDefault("ui.prompt", "> ")
	v.SetDefault("ui.sound", true)
	v.SetDefault("ui.powerUps", true)
	v.SetDefault("ui.mouse", false)

	v.SetDefault("bridge.enabled", true)
	v.SetDefault("bridge.baseUrl", "https://api.holoterm.dev")
	v.SetDefault("bridge.timeout", "10s")

	v.SetDefault("history.size", 100)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
}

// Validate checks the loaded values and rejects anything the runtime
// cannot honor.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.FrameRate); err != nil {
		return errors.Configf("frameRate %q is not a duration", c.FrameRate)
	}

	if c.Bridge.Timeout != "" {
		d, err := time.ParseDuration(c.Bridge.Timeout)
		if err != nil {
			return errors.Configf("bridge.timeout %q is not a duration", c.Bridge.Timeout)
		}
		if d <= 0 {
			return errors.Config("bridge.timeout must be positive")
		}
	}

	if c.Bridge.Enabled && c.Bridge.BaseURL == "" {
		return errors.Config("bridge.baseUrl is required when the bridge is enabled")
	}

	if c.History.Size < 0 {
		return errors.Config("history.size cannot be negative")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Configf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

// FrameInterval returns the parsed hologram tick interval.
func (c *Config) FrameInterval() time.Duration {
	d, err := time.ParseDuration(c.FrameRate)
	if err != nil {
		return 80 * time.Millisecond
	}
	return d
}

// BridgeTimeout returns the parsed collaborator call timeout.
func (c *Config) BridgeTimeout() time.Duration {
	d, err := time.ParseDuration(c.Bridge.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// LogLevel maps the configured level onto the logging package's scale.
func (c *Config) LogLevel() logging.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return logging.DebugLevel
	case "warn":
		return logging.WarnLevel
	case "error":
		return logging.ErrorLevel
	default:
		return logging.InfoLevel
	}
}

// String renders the effective configuration for `config show`.
func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "frameRate: %s\n", c.FrameRate)
	fmt.Fprintf(&b, "ui.prompt: %q\n", c.UI.Prompt)
	fmt.Fprintf(&b, "ui.sound: %t\n", c.UI.Sound)
	fmt.Fprintf(&b, "ui.powerUps: %t\n", c.UI.PowerUps)
	fmt.Fprintf(&b, "ui.mouse: %t\n", c.UI.Mouse)
	fmt.Fprintf(&b, "bridge.enabled: %t\n", c.Bridge.Enabled)
	fmt.Fprintf(&b, "bridge.baseUrl: %s\n", c.Bridge.BaseURL)
	fmt.Fprintf(&b, "bridge.timeout: %s\n", c.Bridge.Timeout)
	fmt.Fprintf(&b, "history.size: %d\n", c.History.Size)
	fmt.Fprintf(&b, "logging.level: %s\n", c.Logging.Level)
	return b.String()
}
