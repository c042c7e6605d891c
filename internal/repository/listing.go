package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/kjannette/carprice-stats/internal/models"
)

const selectListingsSQL = `SELECT id, year, price FROM car_listings`

// ListingRepo reads listings from PostgreSQL.
type ListingRepo struct {
	pool *pgxpool.Pool
}

func NewListingRepo(pool *pgxpool.Pool) *ListingRepo {
	return &ListingRepo{pool: pool}
}

func (r *ListingRepo) Describe() string {
	cfg := r.pool.Config().ConnConfig
	return "postgres:" + cfg.Host + "/" + cfg.Database
}

func (r *ListingRepo) Listings(ctx context.Context) (models.Listings, error) {
	rows, err := r.pool.Query(ctx, selectListingsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "query car_listings")
	}
	defer rows.Close()
	return collectListings(rows)
}

// SQLiteListingRepo reads listings from a SQLite file.
type SQLiteListingRepo struct {
	db   *sql.DB
	path string
}

func NewSQLiteListingRepo(db *sql.DB, path string) *SQLiteListingRepo {
	return &SQLiteListingRepo{db: db, path: path}
}

func (r *SQLiteListingRepo) Describe() string {
	return "sqlite:" + r.path
}

func (r *SQLiteListingRepo) Listings(ctx context.Context) (models.Listings, error) {
	rows, err := r.db.QueryContext(ctx, selectListingsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "query car_listings")
	}
	defer rows.Close()
	return collectListings(rows)
}

// --- scan helpers ---

type rowsIter interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collectListings(rows rowsIter) (models.Listings, error) {
	out := models.Listings{}
	for rows.Next() {
		var id string
		var l models.CarListing
		if err := rows.Scan(&id, &l.Year, &l.Price); err != nil {
			return nil, errors.Wrap(err, "scan listing")
		}
		out[id] = l
	}
	return out, rows.Err()
}
