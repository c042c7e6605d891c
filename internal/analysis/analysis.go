package analysis

import (
	"github.com/pkg/errors"

	"github.com/kjannette/carprice-stats/internal/dataset"
	"github.com/kjannette/carprice-stats/internal/stats"
)

const (
	DefaultZ = 3.0

	logCorrelationDescription = "Correlation between standardized years and the natural log of prices."
)

var ErrUnavailable = errors.New("dataset could not be loaded at startup")

// Run computes the full report over the loaded table. It only reads from
// state, so concurrent calls need no coordination.
func Run(state dataset.State, z float64) (*Report, error) {
	switch s := state.(type) {
	case dataset.Loaded:
		return run(s.Table, z), nil
	case dataset.Unavailable:
		return nil, ErrUnavailable
	default:
		return nil, errors.Errorf("unknown dataset state %T", state)
	}
}

func run(table *stats.Table, z float64) *Report {
	years := table.Years()
	prices := table.Prices()

	stdYears := stats.Standardize(years)
	stdPrices := stats.Standardize(prices)
	logPrices := stats.LogTransform(prices)

	return &Report{
		Outliers: Outliers{
			Z:               Float(z),
			YearsInsidePct:  Float(stats.InsidePercent(years, z)),
			PricesInsidePct: Float(stats.InsidePercent(prices, z)),
		},
		StandardizedCorrelation: StandardizedCorrelation{
			YearsPrices: Float(stats.Pearson(stdYears, stdPrices)),
		},
		LogCorrelation: LogCorrelation{
			Description:    logCorrelationDescription,
			YearsLogPrices: Float(stats.Pearson(stdYears, logPrices)),
		},
	}
}
