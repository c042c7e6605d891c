package stats

import (
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// InsidePercent returns the share of x lying within mean ± z·σ (population σ),
// as a percentage rounded to two decimals. Values exactly on a bound count
// as inside. An empty x yields NaN.
func InsidePercent(x []float64, z float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	mean, std := stat.PopMeanStdDev(x, nil)
	lower := mean - z*std
	upper := mean + z*std

	outside := 0
	for _, v := range x {
		if v < lower || v > upper {
			outside++
		}
	}

	pct := float64(len(x)-outside) / float64(len(x)) * 100
	return decimal.NewFromFloat(pct).Round(2).InexactFloat64()
}

// Standardize returns (x - mean) / σ for every element. A constant input
// has σ = 0 and produces non-finite elements.
func Standardize(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	copy(out, x)

	mean, std := stat.PopMeanStdDev(x, nil)
	floats.AddConst(-mean, out)
	floats.Scale(1/std, out)
	return out
}

// Pearson returns the linear correlation coefficient of x and y.
// Mismatched lengths and constant series give NaN.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// LogTransform applies the natural logarithm elementwise.
func LogTransform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Log(v)
	}
	return out
}
