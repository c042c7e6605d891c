package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/kjannette/carprice-stats/internal/models"
)

// SchemaSQL creates the listings table. It is valid for both PostgreSQL
// and SQLite.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS car_listings (
    id    VARCHAR(64) PRIMARY KEY,
    year  DOUBLE PRECISION NOT NULL,
    price DOUBLE PRECISION NOT NULL
);
`

const insertListingSQL = `INSERT INTO car_listings (id, year, price) VALUES (?, ?, ?)`

// SeedSQLite creates the schema and inserts listings. It is used by
// cmd/mkdataset and tests; the server never writes.
func SeedSQLite(ctx context.Context, db *sql.DB, listings models.Listings) error {
	if _, err := db.ExecContext(ctx, SchemaSQL); err != nil {
		return errors.Wrap(err, "create schema")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertListingSQL)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for id, l := range listings {
		if _, err := stmt.ExecContext(ctx, id, l.Year, l.Price); err != nil {
			return errors.Wrapf(err, "insert listing %s", id)
		}
	}
	return tx.Commit()
}
