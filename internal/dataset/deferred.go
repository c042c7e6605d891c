package dataset

import (
	"context"

	"github.com/pkg/errors"

	"github.com/kjannette/carprice-stats/internal/models"
)

// Deferred opens a connection-backed source only when Load reads it, so a
// failed connection degrades the service the same way a missing file does.
// The connection is closed once the listings have been read.
type Deferred struct {
	Name string
	Open func(ctx context.Context) (src Source, closeFn func(), err error)
}

func (d Deferred) Describe() string {
	return d.Name
}

func (d Deferred) Listings(ctx context.Context) (models.Listings, error) {
	src, closeFn, err := d.Open(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", d.Name)
	}
	defer closeFn()
	return src.Listings(ctx)
}
