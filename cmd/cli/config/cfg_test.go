package config_test

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucax88x/datekit/cmd/cli/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReadYaml(t *testing.T) {
	path := writeConfig(t, "backend: strftime\ntimezone: Europe/Rome\n")

	cfg, err := config.ReadYaml(path)

	require.NoError(t, err)
	assert.Equal(t, "strftime", cfg.Backend)
	assert.Equal(t, "Europe/Rome", cfg.Timezone)
	// untouched keys keep their defaults
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Concurrency)
}

func TestReadYamlMissingFile(t *testing.T) {
	_, err := config.ReadYaml(filepath.Join(t.TempDir(), "missing.yaml"))

	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadYamlInvalid(t *testing.T) {
	_, err := config.ReadYaml(writeConfig(t, "backend: [unterminated\n"))

	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("file then overrides", func(t *testing.T) {
		v := viper.New()
		v.Set(config.ConfigKey, writeConfig(t, "backend: strftime\nconcurrency: 3\n"))
		v.Set(config.TimezoneKey, "UTC")

		cfg, err := config.Load(logger, v)

		require.NoError(t, err)
		assert.Equal(t, "strftime", cfg.Backend)
		assert.Equal(t, "UTC", cfg.Timezone)
		assert.Equal(t, 3, cfg.Concurrency)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("explicit missing file fails", func(t *testing.T) {
		v := viper.New()
		v.Set(config.ConfigKey, filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := config.Load(logger, v)

		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("concurrency is at least one", func(t *testing.T) {
		v := viper.New()
		v.Set(config.ConfigKey, writeConfig(t, "concurrency: 0\n"))

		cfg, err := config.Load(logger, v)

		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Concurrency)
	})
}

func TestLocation(t *testing.T) {
	loc, err := (&config.Cfg{Timezone: "Local"}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = (&config.Cfg{Timezone: "UTC"}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = (&config.Cfg{Timezone: "Mars/Olympus"}).Location()
	require.Error(t, err)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&config.Cfg{LogLevel: "debug"}).Level())
	assert.Equal(t, slog.LevelWarn, (&config.Cfg{LogLevel: "WARN"}).Level())
	assert.Equal(t, slog.LevelInfo, (&config.Cfg{LogLevel: "loud"}).Level())
}
