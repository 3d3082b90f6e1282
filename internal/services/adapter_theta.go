package services

import (
	"context"

	"github.com/kairosml/kairos-go/internal/models"
	"github.com/kairosml/kairos-go/pkg/engine"
)

// ThetaAdapter drives the Theta estimator of the statsforecast engine.
type ThetaAdapter struct {
	engine engine.EngineService
}

func NewThetaAdapter(engineSvc engine.EngineService) *ThetaAdapter {
	return &ThetaAdapter{engine: engineSvc}
}

func (a *ThetaAdapter) Name() models.ModelName {
	return models.ModelTheta
}

func (a *ThetaAdapter) FitAndPredict(ctx context.Context, series Series, horizon int, cadence CadenceInfo, cfg map[string]interface{}, _, _ map[string][]float64) (*Prediction, error) {
	seasonLength := configInt(cfg, "seasonLength", cadence.DefaultSeasonLength)

	resp, err := a.engine.StatsForecast(ctx, &engine.StatsForecastRequest{
		Model:        engine.StatsModelTheta,
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
