package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

type Config struct {
	Port            int
	CORSAllowOrigin string
	WebhookURL      string

	// Dataset
	DatasetSource string
	DatasetPath   string
	SQLitePath    string
	DatabaseURL   string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file, then parses args. Every flag falls
// back to its environment variable and then to the default.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	app := kingpin.New("carprice-stats", "Descriptive statistics API over a car price dataset.")

	app.Flag("port", "HTTP listen port").Envar("PORT").Default("8000").IntVar(&cfg.Port)
	app.Flag("cors-origin", "Access-Control-Allow-Origin value").Envar("CORS_ALLOW_ORIGIN").Default("*").StringVar(&cfg.CORSAllowOrigin)
	app.Flag("webhook-url", "Slack/Discord webhook notified when the dataset fails to load").Envar("WEBHOOK_URL").StringVar(&cfg.WebhookURL)

	app.Flag("dataset-source", "Where to load listings from: file, postgres or sqlite").Envar("DATASET_SOURCE").Default(SourceFile).StringVar(&cfg.DatasetSource)
	app.Flag("dataset-path", "Listings blob read by the file source").Envar("DATASET_PATH").Default("data_sample.pb").StringVar(&cfg.DatasetPath)
	app.Flag("sqlite-path", "SQLite file read by the sqlite source").Envar("SQLITE_PATH").Default("car_listings.db").StringVar(&cfg.SQLitePath)
	app.Flag("database-url", "PostgreSQL DSN read by the postgres source").Envar("DATABASE_URL").StringVar(&cfg.DatabaseURL)

	app.Flag("log-level", "Log level: debug, info, warn, error").Envar("LOG_LEVEL").Default("info").StringVar(&cfg.LogLevel)
	app.Flag("log-format", "Log format: text or json").Envar("LOG_FORMAT").Default("text").StringVar(&cfg.LogFormat)

	if _, err := app.Parse(args); err != nil {
		return nil, errors.Wrap(err, "could not parse command line flags")
	}

	if cfg.DatabaseURL == "" && os.Getenv("DB_USER") != "" {
		cfg.DatabaseURL = dsnFromEnv()
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	switch c.DatasetSource {
	case SourceFile, SourceSQLite:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, "DATABASE_URL (or DB_USER/DB_HOST/...) is required for the postgres source")
		}
	default:
		errs = append(errs, fmt.Sprintf("DATASET_SOURCE %q is not one of file, postgres, sqlite", c.DatasetSource))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Sprintf("PORT %d is out of range", c.Port))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT %q is not text or json", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func (c *Config) Print() {
	fields := log.Fields{
		"component":      "config",
		"port":           c.Port,
		"dataset_source": c.DatasetSource,
		"cors_origin":    c.CORSAllowOrigin,
		"webhook":        boolLabel(c.WebhookURL != "", "configured", "not set"),
	}
	switch c.DatasetSource {
	case SourceFile:
		fields["dataset_path"] = c.DatasetPath
	case SourceSQLite:
		fields["sqlite_path"] = c.SQLitePath
	}
	log.WithFields(fields).Info("configuration loaded")
}

// --- helpers ---

func dsnFromEnv() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		envStr("DB_USER", ""), envStr("DB_PASSWORD", ""),
		envStr("DB_HOST", "localhost"), envInt("DB_PORT", 5432),
		envStr("DB_NAME", "car_listings"))
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func boolLabel(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
