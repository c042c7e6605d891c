package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, SourceFile, cfg.DatasetSource)
	assert.Equal(t, "data_sample.pb", cfg.DatasetPath)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("DATASET_SOURCE", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/cars.db")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, SourceSQLite, cfg.DatasetSource)
	assert.Equal(t, "/tmp/cars.db", cfg.SQLitePath)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "9100")

	cfg, err := Load([]string{"--port", "9200", "--dataset-path", "other.json"})
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Port)
	assert.Equal(t, "other.json", cfg.DatasetPath)
}

func TestLoad_DSNFromEnv(t *testing.T) {
	t.Setenv("DB_USER", "stats")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "cars")

	cfg, err := Load([]string{"--dataset-source", "postgres"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://stats:pw@db.internal:6543/cars?sslmode=disable", cfg.DatabaseURL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_BadFlag(t *testing.T) {
	_, err := Load([]string{"--port", "eighty"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Port: 8000, DatasetSource: SourceFile, LogLevel: "info", LogFormat: "text"}
	require.NoError(t, valid.Validate())

	cases := map[string]func(c *Config){
		"unknown source":  func(c *Config) { c.DatasetSource = "s3" },
		"postgres no dsn": func(c *Config) { c.DatasetSource = SourcePostgres },
		"port zero":       func(c *Config) { c.Port = 0 },
		"port too high":   func(c *Config) { c.Port = 70000 },
		"bad log level":   func(c *Config) { c.LogLevel = "loud" },
		"bad log format":  func(c *Config) { c.LogFormat = "xml" },
	}
	for name, mutate := range cases {
		c := valid
		mutate(&c)
		assert.Error(t, c.Validate(), name)
	}
}
