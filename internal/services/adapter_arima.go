package services

import (
	"context"

	"github.com/kairosml/kairos-go/internal/models"
	"github.com/kairosml/kairos-go/pkg/engine"
)

// ARIMAAdapter drives the AutoARIMA estimator of the statsforecast engine,
// which performs its own (p,d,q) order search.
type ARIMAAdapter struct {
	engine engine.EngineService
}

func NewARIMAAdapter(engineSvc engine.EngineService) *ARIMAAdapter {
	return &ARIMAAdapter{engine: engineSvc}
}

func (a *ARIMAAdapter) Name() models.ModelName {
	return models.ModelARIMA
}

func (a *ARIMAAdapter) FitAndPredict(ctx context.Context, series Series, horizon int, cadence CadenceInfo, cfg map[string]interface{}, _, _ map[string][]float64) (*Prediction, error) {
	seasonLength := configInt(cfg, "seasonLength", cadence.DefaultSeasonLength)

	resp, err := a.engine.StatsForecast(ctx, &engine.StatsForecastRequest{
		Model:        engine.StatsModelAutoARIMA,
		Ds:           series.Ds,
		Y:            series.Y,
		Horizon:      horizon,
		SeasonLength: seasonLength,
		Freq:         cadence.Frequency.Alias(),
		Level:        []int{95},
		WithFitted:   true,
	})
	if err != nil {
		return nil, err
	}
	return statsPrediction(resp, horizon)
}
