package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjannette/carprice-stats/internal/models"
)

func TestPrepareTable(t *testing.T) {
	table, err := PrepareTable(models.Listings{
		"C": {Year: 2020, Price: 15000},
		"A": {Year: 2010, Price: 10000},
		"B": {Year: 2015, Price: 20000},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []float64{2010, 2015, 2020}, table.Years())
	assert.Equal(t, []float64{10000, 20000, 15000}, table.Prices())

	year, price := table.Row(1)
	assert.Equal(t, 2015.0, year)
	assert.Equal(t, 20000.0, price)
}

func TestPrepareTable_ColumnsAreCopies(t *testing.T) {
	table, err := PrepareTable(models.Listings{"A": {Year: 2010, Price: 10000}})
	require.NoError(t, err)

	years := table.Years()
	years[0] = 1999
	assert.Equal(t, []float64{2010}, table.Years())
}

func TestPrepareTable_Empty(t *testing.T) {
	_, err := PrepareTable(models.Listings{})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestPrepareTable_KeepsNaN(t *testing.T) {
	table, err := PrepareTable(models.Listings{"A": {Year: 2010, Price: math.NaN()}})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(table.Prices()[0]))
}
