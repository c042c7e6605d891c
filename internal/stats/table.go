package stats

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/kjannette/carprice-stats/internal/models"
)

const (
	colYear = iota
	colPrice
)

var ErrEmptyDataset = errors.New("dataset has no listings")

// Table is the n×2 (year, price) matrix derived from a set of listings.
// It is never modified after PrepareTable returns.
type Table struct {
	m *mat.Dense
}

// PrepareTable builds one row per listing in ascending key order.
// Values are copied as-is; NaN and Inf propagate to the statistics.
func PrepareTable(listings models.Listings) (*Table, error) {
	if len(listings) == 0 {
		return nil, ErrEmptyDataset
	}

	keys := make([]string, 0, len(listings))
	for k := range listings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := make([]float64, 0, 2*len(keys))
	for _, k := range keys {
		l := listings[k]
		data = append(data, l.Year, l.Price)
	}
	return &Table{m: mat.NewDense(len(keys), 2, data)}, nil
}

func (t *Table) Len() int {
	r, _ := t.m.Dims()
	return r
}

// Years returns a copy of the year column.
func (t *Table) Years() []float64 {
	return mat.Col(nil, colYear, t.m)
}

// Prices returns a copy of the price column.
func (t *Table) Prices() []float64 {
	return mat.Col(nil, colPrice, t.m)
}

// Row returns the (year, price) pair at index i.
func (t *Table) Row(i int) (year, price float64) {
	return t.m.At(i, colYear), t.m.At(i, colPrice)
}
