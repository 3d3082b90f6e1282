package services

import (
	"context"
	"fmt"

	"github.com/kairosml/kairos-go/internal/models"
	"github.com/kairosml/kairos-go/pkg/engine"
)

// ProphetAdapter drives the Prophet engine. It is the only adapter that
// accepts exogenous regressors.
type ProphetAdapter struct {
	engine engine.EngineService
}

func NewProphetAdapter(engineSvc engine.EngineService) *ProphetAdapter {
	return &ProphetAdapter{engine: engineSvc}
}

func (a *ProphetAdapter) Name() models.ModelName {
	return models.ModelProphet
}

// FitAndPredict translates the request into the Prophet engine surface.
// Regressor consistency is re-checked here even though the request validator
// is the first line of defense: the adapter cannot assume it was invoked with
// the same strictness when used in isolation, and a missing future regressor
// must surface as a validation error rather than an engine crash.
func (a *ProphetAdapter) FitAndPredict(ctx context.Context, series Series, horizon int, cadence CadenceInfo, cfg map[string]interface{}, regressors, regressorsFuture map[string][]float64) (*Prediction, error) {
	mode := configString(cfg, "seasonalityMode", "additive")
	if mode != "additive" && mode != "multiplicative" {
		return nil, NewValidationError("seasonalityMode must be additive or multiplicative, got %q", mode)
	}

	if err := checkProphetRegressors(regressors, regressorsFuture, len(series.Y), horizon); err != nil {
		return nil, err
	}

	resp, err := a.engine.Prophet(ctx, &engine.ProphetRequest{
		Ds:                 series.Ds,
		Y:                  series.Y,
		Horizon:            horizon,
		Freq:               cadence.Frequency.Alias(),
		IntervalWidth:      configFloat(cfg, "intervalWidth", 0.95),
		UncertaintySamples: configInt(cfg, "uncertaintySamples", 1000),
		SeasonalityMode:    mode,
		YearlySeasonality:  configSeasonality(cfg, "yearlySeasonality"),
		WeeklySeasonality:  configSeasonality(cfg, "weeklySeasonality"),
		DailySeasonality:   configSeasonality(cfg, "dailySeasonality"),
		Regressors:         regressors,
		RegressorsFuture:   regressorsFuture,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Yhat) != horizon {
		return nil, fmt.Errorf("engine returned %d forecast points, expected %d", len(resp.Yhat), horizon)
	}

	pred := &Prediction{Yhat: resp.Yhat}
	if len(resp.YhatLower) == horizon && len(resp.YhatUpper) == horizon {
		pred.Lower = resp.YhatLower
		pred.Upper = resp.YhatUpper
	}
	return pred, nil
}

func checkProphetRegressors(regressors, regressorsFuture map[string][]float64, historyLen, horizon int) error {
	if regressors == nil {
		return nil
	}
	if regressorsFuture == nil {
		return NewValidationError("regressorsFuture is required when regressors are provided")
	}
	for key, values := range regressors {
		if len(values) != historyLen {
			return NewValidationError("regressor %q length mismatch: got %d, expected %d", key, len(values), historyLen)
		}
		future, ok := regressorsFuture[key]
		if !ok {
			return NewValidationError("future values for regressor %q are missing from regressorsFuture", key)
		}
		if len(future) != horizon {
			return NewValidationError("future regressor %q length mismatch: got %d, expected horizon %d", key, len(future), horizon)
		}
	}
	return nil
}
