package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kairosml/kairos-go/internal/models"
	"github.com/kairosml/kairos-go/pkg/engine"
)

// Series is the normalized, model-ready form of the inbound series:
// epoch-second timestamps aligned one-to-one with observed values.
type Series struct {
	Ds []int64
	Y  []float64
}

// Prediction is the canonical adapter output: three sequences of horizon
// length. Lower and Upper are nil when the backend does not estimate
// prediction intervals. Fitted optionally carries in-sample fitted values
// for training diagnostics.
type Prediction struct {
	Yhat   []float64
	Lower  []float64
	Upper  []float64
	Fitted []float64
}

// ModelAdapter translates the normalized series plus the open configuration
// map into one backend's native call, and the backend's raw output back into
// a Prediction. The regressor maps are honoured only by the PROPHET adapter;
// every other adapter ignores them.
type ModelAdapter interface {
	Name() models.ModelName
	FitAndPredict(ctx context.Context, series Series, horizon int, cadence CadenceInfo, cfg map[string]interface{}, regressors, regressorsFuture map[string][]float64) (*Prediction, error)
}

// statsPrediction maps a statsforecast engine response onto the canonical
// triple, enforcing the horizon-length collaborator contract.
func statsPrediction(resp *engine.StatsForecastResponse, horizon int) (*Prediction, error) {
	if len(resp.Mean) != horizon {
		return nil, fmt.Errorf("engine returned %d forecast points, expected %d", len(resp.Mean), horizon)
	}
	pred := &Prediction{Yhat: resp.Mean, Fitted: resp.Fitted}
	if len(resp.Lo95) == horizon && len(resp.Hi95) == horizon {
		pred.Lower = resp.Lo95
		pred.Upper = resp.Hi95
	}
	return pred, nil
}

// Config coercion helpers. The configuration map arrives as decoded JSON, so
// numbers are float64; values originating elsewhere may be native ints or
// numeric strings. Unrecognized keys and uncoercible values fall back to the
// default rather than failing the request.

func configInt(cfg map[string]interface{}, key string, def int) int {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return def
}

func configFloat(cfg map[string]interface{}, key string, def float64) float64 {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if parsed, err := strconv.ParseFloat(n, 64); err == nil {
			return parsed
		}
	}
	return def
}

func configString(cfg map[string]interface{}, key string, def string) string {
	if v, ok := cfg[key].(string); ok {
		return v
	}
	return def
}

// configSeasonality reads a tri-state seasonality switch. Booleans are
// accepted alongside the "on"/"off"/"auto" strings; anything else is auto.
func configSeasonality(cfg map[string]interface{}, key string) engine.Seasonality {
	switch v := cfg[key].(type) {
	case string:
		switch v {
		case "on":
			return engine.SeasonalityOn
		case "off":
			return engine.SeasonalityOff
		}
	case bool:
		if v {
			return engine.SeasonalityOn
		}
		return engine.SeasonalityOff
	}
	return engine.SeasonalityAuto
}
