package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Connect opens a small pool; it is only used for the startup read.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parse dsn")
	}

	cfg.MaxConns = 4
	cfg.MinConns = 0
	cfg.MaxConnIdleTime = 30 * time.Second
	cfg.MaxConnLifetime = 5 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, errors.Wrap(err, "ping")
	}

	log.WithFields(log.Fields{"component": "db", "host": cfg.ConnConfig.Host}).Info("connected to postgres")
	return p, nil
}

// OpenSQLite opens an existing SQLite file read-only.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	d, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := d.PingContext(ctx); err != nil {
		d.Close()
		return nil, errors.Wrapf(err, "ping %s", path)
	}
	return d, nil
}
