package services

import (
	"context"
	"fmt"

	"github.com/kairosml/kairos-go/internal/models"
	"github.com/kairosml/kairos-go/pkg/engine"
)

const (
	defaultNeuralProphetEpochs       = 100
	defaultNeuralProphetLearningRate = 0.1
	maxNeuralProphetBatchSize        = 64
)

// NeuralProphetAdapter drives the NeuralProphet engine. The engine produces
// point forecasts only, so the returned bounds are always nil and the
// assembled response carries no interval level.
type NeuralProphetAdapter struct {
	engine engine.EngineService
}

func NewNeuralProphetAdapter(engineSvc engine.EngineService) *NeuralProphetAdapter {
	return &NeuralProphetAdapter{engine: engineSvc}
}

func (a *NeuralProphetAdapter) Name() models.ModelName {
	return models.ModelNeuralProphet
}

func (a *NeuralProphetAdapter) FitAndPredict(ctx context.Context, series Series, horizon int, cadence CadenceInfo, cfg map[string]interface{}, _, _ map[string][]float64) (*Prediction, error) {
	batchSize := maxNeuralProphetBatchSize
	if len(series.Y) < batchSize {
		batchSize = len(series.Y)
	}

	resp, err := a.engine.NeuralProphet(ctx, &engine.NeuralProphetRequest{
		Ds:                series.Ds,
		Y:                 series.Y,
		Horizon:           horizon,
		Freq:              cadence.Frequency.Alias(),
		SeasonalityMode:   configString(cfg, "seasonalityMode", "additive"),
		YearlySeasonality: configSeasonality(cfg, "yearlySeasonality"),
		WeeklySeasonality: configSeasonality(cfg, "weeklySeasonality"),
		DailySeasonality:  configSeasonality(cfg, "dailySeasonality"),
		Epochs:            configInt(cfg, "epochs", defaultNeuralProphetEpochs),
		LearningRate:      configFloat(cfg, "learningRate", defaultNeuralProphetLearningRate),
		BatchSize:         batchSize,
		NForecasts:        horizon,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Yhat) != horizon {
		return nil, fmt.Errorf("engine returned %d forecast points, expected %d", len(resp.Yhat), horizon)
	}

	return &Prediction{Yhat: resp.Yhat}, nil
}
