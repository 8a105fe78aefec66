package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucax88x/datekit/internal/homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	BackendKey     = "backend"
	TimezoneKey    = "timezone"
	LogLevelKey    = "log_level"
	ConcurrencyKey = "concurrency"
	ConfigKey      = "config"
)

type Cfg struct {
	Backend     string `yaml:"backend"`
	Timezone    string `yaml:"timezone"`
	LogLevel    string `yaml:"log_level"`
	Concurrency int    `yaml:"concurrency"`
}

func Default() *Cfg {
	return &Cfg{
		Backend:     "joda",
		Timezone:    "Local",
		LogLevel:    "info",
		Concurrency: 8,
	}
}

func DefaultPath() (string, error) {
	dir, err := homedir.Get()

	if err != nil {
		//nolint:errorlint // no wrap
		return "", fmt.Errorf("config: error getting home dir. %v", err)
	}

	return filepath.Join(dir, "config.yaml"), nil
}

// ReadYaml overlays the file at path on the defaults. The error wraps
// fs.ErrNotExist when there is no such file.
func ReadYaml(path string) (*Cfg, error) {
	cfg := Default()

	yamlData, err := os.ReadFile(path)

	if err != nil {
		return cfg, fmt.Errorf("config: could not read file. %w", err)
	}

	err = yaml.Unmarshal(yamlData, cfg)

	if err != nil {
		//nolint:errorlint // no wrap
		return cfg, fmt.Errorf("config: could not unmarshal cfg. %v", err)
	}

	return cfg, nil
}

// Load resolves the configuration: defaults, then the YAML file, then
// whatever viper holds from the environment and changed flags.
func Load(logger *slog.Logger, v *viper.Viper) (*Cfg, error) {
	path := v.GetString(ConfigKey)
	explicit := path != ""

	if !explicit {
		defaultPath, err := DefaultPath()

		if err != nil {
			return nil, err
		}

		path = defaultPath
	}

	cfg, err := ReadYaml(path)

	switch {
	case err == nil:
		logger.Debug("config: using file", slog.String("path", path))
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		logger.Debug("config: no config file, using defaults", slog.String("path", path))
	default:
		return nil, err
	}

	v.SetDefault(BackendKey, cfg.Backend)
	v.SetDefault(TimezoneKey, cfg.Timezone)
	v.SetDefault(LogLevelKey, cfg.LogLevel)
	v.SetDefault(ConcurrencyKey, cfg.Concurrency)

	resolved := &Cfg{
		Backend:     strings.ToLower(v.GetString(BackendKey)),
		Timezone:    v.GetString(TimezoneKey),
		LogLevel:    v.GetString(LogLevelKey),
		Concurrency: v.GetInt(ConcurrencyKey),
	}

	if resolved.Concurrency < 1 {
		resolved.Concurrency = 1
	}

	return resolved, nil
}

func (c *Cfg) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Timezone)

	if err != nil {
		return nil, fmt.Errorf("config: unknown timezone '%s'. %w", c.Timezone, err)
	}

	return loc, nil
}

func (c *Cfg) Level() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}
