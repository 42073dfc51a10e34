package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfigFile(t *testing.T, values map[string]any) {
	t.Helper()

	dir := t.TempDir()
	raw, err := yaml.Marshal(values)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), raw, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	writeConfigFile(t, map[string]any{})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8375", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24, cfg.KarmaWindowHours)
	assert.Equal(t, 5, cfg.LeaderboardDefaultLimit)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	writeConfigFile(t, map[string]any{
		"PORT":               "9000",
		"DB_DRIVER":          "sqlite",
		"SQLITE_PATH":        "feed.db",
		"KARMA_WINDOW_HOURS": 48,
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "feed.db", cfg.SQLitePath)
	assert.Equal(t, 48, cfg.KarmaWindowHours)
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:                    "8375",
			Env:                     "test",
			DBDriver:                "sqlite",
			KarmaWindowHours:        24,
			LeaderboardDefaultLimit: 5,
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := base()
		cfg.DBDriver = "oracle"
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive window", func(t *testing.T) {
		cfg := base()
		cfg.KarmaWindowHours = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive default limit", func(t *testing.T) {
		cfg := base()
		cfg.LeaderboardDefaultLimit = -1
		assert.Error(t, cfg.Validate())
	})
}
