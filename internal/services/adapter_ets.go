package services

import (
	"context"

	"github.com/kairosml/kairos-go/internal/models"
	"github.com/kairosml/kairos-go/pkg/engine"
)

// ETSAdapter drives the AutoETS estimator of the statsforecast engine.
type ETSAdapter struct {
	engine engine.EngineService
}

func NewETSAdapter(engineSvc engine.EngineService) *ETSAdapter {
	return &ETSAdapter{engine: engineSvc}
}

func (a *ETSAdapter) Name() models.ModelName {
	return models.ModelETS
}

// FitAndPredict translates the series into an AutoETS call. The seasonal
// period starts from the request override or the inferred default and is
// degraded through the data-sufficiency ladder when history is short. The
// trend component is always forced to additive ("A"): left on auto, AutoETS
// tends to select a no-trend model that produces a flat forecast line. The
// seasonal component stays auto-selected while a seasonal period exists and
// is disabled outright at period 1.
func (a *ETSAdapter) FitAndPredict(ctx context.Context, series Series, horizon int, cadence CadenceInfo, cfg map[string]interface{}, _, _ map[string][]float64) (*Prediction, error) {
	baseSeason := configInt(cfg, "seasonLength", cadence.DefaultSeasonLength)
	seasonLength := degradeSeasonLength(baseSeason, len(series.Y), cadence.StepSeconds)

	modelSpec := "ZAZ"
	if seasonLength <= 1 {
		modelSpec = "ZAN"
	}

	resp, err := a.engine.StatsForecast(ctx, &engine.StatsForecastRequest{
		Model:        engine.StatsModelAutoETS,
		Ds:           series.Ds,
		Y:            series.Y,
		Horizon:      horizon,
		SeasonLength: seasonLength,
		Freq:         cadence.Frequency.Alias(),
		Level:        []int{95},
		ModelSpec:    modelSpec,
		WithFitted:   true,
	})
	if err != nil {
		return nil, err
	}
	return statsPrediction(resp, horizon)
}
