// Package config handles application configuration management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (SKILLMATRIX_DATA_DIR, ...).
const EnvPrefix = "SKILLMATRIX"

// Configuration keys.
const (
	KeyDataDir   = "data_dir"
	KeyTheme     = "theme"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// ThemeName selects one of the built-in TUI palettes.
type ThemeName string

const (
	ThemePunk  ThemeName = "punk"
	ThemeNeon  ThemeName = "neon"
	ThemeBlood ThemeName = "blood"
)

// Themes lists the accepted theme names.
var Themes = []ThemeName{ThemePunk, ThemeNeon, ThemeBlood}

// LogLevels lists the accepted log levels.
var LogLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration.
type Config struct {
	// Directory holding criteria*.json / team*.json overrides. Empty means bundled data.
	DataDir string `mapstructure:"data_dir"`

	Theme ThemeName `mapstructure:"theme"`

	// File sink settings for internal/log
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// File the config was read from, empty when none was found
	File string `mapstructure:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme:     ThemePunk,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads the config file from the XDG config dir, then environment overrides.
func Load() (*Config, error) {
	return LoadFile(GetPaths().ConfigFile)
}

// LoadFile reads configuration from path (optional) and SKILLMATRIX_* variables.
func LoadFile(path string) (*Config, error) {
	v := New()
	v.SetConfigFile(path)

	var file string
	if err := v.ReadInConfig(); err != nil {
		if !isMissingConfig(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		file = v.ConfigFileUsed()
	}

	cfg, err := Decode(v)
	if err != nil {
		return nil, err
	}
	cfg.File = file
	return cfg, nil
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	def := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDataDir, def.DataDir)
	v.SetDefault(KeyTheme, string(def.Theme))
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)
	return v
}

// Decode unmarshals v into a validated Config.
func Decode(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		trimStringHook(),
		themeHook(),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("%w: log_level %q (want one of %s)", ErrInvalidConfig, c.LogLevel, strings.Join(LogLevels, ", "))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

func trimStringHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, _ reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(reflect.ValueOf(data).String()), nil
	}
}

func themeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(ThemeName("")) {
			return data, nil
		}
		raw := reflect.ValueOf(data).String()
		name := ThemeName(strings.ToLower(raw))
		if !slices.Contains(Themes, name) {
			return nil, fmt.Errorf("unknown theme %q (want punk, neon or blood)", raw)
		}
		return name, nil
	}
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
