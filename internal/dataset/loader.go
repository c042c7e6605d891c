package dataset

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kjannette/carprice-stats/internal/models"
	"github.com/kjannette/carprice-stats/internal/stats"
)

// Source yields the full set of listings in a single read.
type Source interface {
	Describe() string
	Listings(ctx context.Context) (models.Listings, error)
}

// Load reads src once and prepares the table. Any failure is logged and
// turned into Unavailable; the caller keeps running in degraded mode.
func Load(ctx context.Context, src Source) State {
	logger := log.WithFields(log.Fields{"component": "dataset", "source": src.Describe()})

	table, err := load(ctx, src)
	if err != nil {
		logger.WithError(err).Error("dataset could not be loaded, analysis will be unavailable")
		return Unavailable{Source: src.Describe(), Reason: err.Error()}
	}

	logger.WithField("records", table.Len()).Info("dataset loaded")
	return Loaded{Table: table, Source: src.Describe(), LoadedAt: time.Now().UTC()}
}

func load(ctx context.Context, src Source) (*stats.Table, error) {
	listings, err := src.Listings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read listings")
	}
	table, err := stats.PrepareTable(listings)
	if err != nil {
		return nil, errors.Wrap(err, "prepare table")
	}
	return table, nil
}
