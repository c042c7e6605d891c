package analysis

import (
	"encoding/json"
	"math"
	"strconv"
)

// Float is a float64 that survives JSON encoding when it is not finite.
// NaN and ±Inf are written as the strings "NaN", "Infinity", "-Infinity".
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *Float) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		switch s {
		case "NaN":
			*f = Float(math.NaN())
		case "Infinity":
			*f = Float(math.Inf(1))
		case "-Infinity":
			*f = Float(math.Inf(-1))
		default:
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			*f = Float(v)
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

type Report struct {
	Outliers                Outliers                `json:"outliers"`
	StandardizedCorrelation StandardizedCorrelation `json:"standardized_correlation"`
	LogCorrelation          LogCorrelation          `json:"log_correlation"`
}

type Outliers struct {
	Z               Float `json:"z_value"`
	YearsInsidePct  Float `json:"years_inside_pct"`
	PricesInsidePct Float `json:"prices_inside_pct"`
}

type StandardizedCorrelation struct {
	YearsPrices Float `json:"years_prices"`
}

type LogCorrelation struct {
	Description    string `json:"description"`
	YearsLogPrices Float  `json:"years_log_prices"`
}
