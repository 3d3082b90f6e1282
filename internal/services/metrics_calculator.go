package services

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kairosml/kairos-go/internal/models"
)

// ComputeMetrics calculates MAE, RMSE and MAPE from aligned actual/predicted
// sequences, truncated to the shorter length. MAPE is averaged only over
// positions with a nonzero actual; zero-actual positions are excluded rather
// than treated as infinite error, and when every actual is zero MAPE is nil.
// All three metrics are nil when either sequence is empty.
func ComputeMetrics(actual, predicted []float64) (mae, rmse, mape *float64) {
	if len(actual) == 0 || len(predicted) == 0 {
		return nil, nil, nil
	}

	n := len(actual)
	if len(predicted) < n {
		n = len(predicted)
	}
	actual = actual[:n]
	predicted = predicted[:n]

	residuals := make([]float64, n)
	floats.SubTo(residuals, actual, predicted)

	absErr := make([]float64, n)
	sqErr := make([]float64, n)
	for i, r := range residuals {
		absErr[i] = math.Abs(r)
		sqErr[i] = r * r
	}

	maeV := stat.Mean(absErr, nil)
	rmseV := math.Sqrt(stat.Mean(sqErr, nil))
	mae, rmse = &maeV, &rmseV

	var pctErr []float64
	for i, a := range actual {
		if a != 0 {
			pctErr = append(pctErr, math.Abs(residuals[i]/a))
		}
	}
	if len(pctErr) > 0 {
		mapeV := stat.Mean(pctErr, nil) * 100
		mape = &mapeV
	}

	return mae, rmse, mape
}

// computeInSampleMetrics builds the metrics block of a response from the
// training series and the fitted values a backend optionally returned.
func computeInSampleMetrics(actual, fitted []float64) models.ForecastMetrics {
	m := models.ForecastMetrics{SampleCount: len(actual)}
	if len(fitted) == 0 {
		return m
	}
	m.MAE, m.RMSE, m.MAPE = ComputeMetrics(actual, fitted)
	return m
}
