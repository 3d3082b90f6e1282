package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kairosml/kairos-go/internal/config"
	"github.com/kairosml/kairos-go/internal/models"
	"github.com/kairosml/kairos-go/internal/telemetry"
	"github.com/kairosml/kairos-go/pkg/engine"
)

// intervalLevel is the confidence level every interval-producing backend is
// asked for.
const intervalLevel = 0.95

// ForecastService validates forecast requests, dispatches them to the
// adapter registered for the requested model family and assembles the
// uniform response envelope. Each call is self-contained; the service holds
// no per-request state.
type ForecastService struct {
	cfg      *config.Config
	logger   *logrus.Logger
	adapters map[models.ModelName]ModelAdapter
}

// NewForecastService wires one adapter per supported model family around the
// shared engine service.
func NewForecastService(cfg *config.Config, engineSvc engine.EngineService, logger *logrus.Logger) *ForecastService {
	if logger == nil {
		logger = logrus.New()
	}
	adapters := map[models.ModelName]ModelAdapter{
		models.ModelETS:           NewETSAdapter(engineSvc),
		models.ModelARIMA:         NewARIMAAdapter(engineSvc),
		models.ModelTheta:         NewThetaAdapter(engineSvc),
		models.ModelProphet:       NewProphetAdapter(engineSvc),
		models.ModelNeuralProphet: NewNeuralProphetAdapter(engineSvc),
	}
	return &ForecastService{
		cfg:      cfg,
		logger:   logger,
		adapters: adapters,
	}
}

// Forecast runs the full single-item pipeline: validation, cadence
// inference, dispatch and response assembly. Validation failures come back
// as *ValidationError; everything that goes wrong inside an adapter after
// validation is wrapped in an *EngineError and never retried.
func (s *ForecastService) Forecast(ctx context.Context, req *models.ForecastRequest) (*models.ForecastResponse, error) {
	if err := ValidateForecastRequest(req); err != nil {
		return nil, err
	}

	adapter, ok := s.adapters[req.Model]
	if !ok {
		// Unreachable with enum-typed input, but an unknown model must still
		// fail descriptively rather than silently.
		return nil, NewValidationError("unsupported model: %s", req.Model)
	}

	cadence := InferCadence(req.Ds)

	tracer := telemetry.GetForecastTracer()
	ctx, span := tracer.Start(ctx, fmt.Sprintf("forecast %s", req.Model),
		trace.WithAttributes(
			attribute.String("forecast.model", string(req.Model)),
			attribute.Int("forecast.horizon", req.Horizon),
			attribute.Int("forecast.history_count", len(req.Ds)),
			attribute.Int64("forecast.step_seconds", cadence.StepSeconds),
		),
	)
	defer span.End()

	start := time.Now()
	series := Series{Ds: req.Ds, Y: req.Y}
	pred, err := adapter.FitAndPredict(ctx, series, req.Horizon, cadence, req.Config, req.Regressors, req.RegressorsFuture)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if IsValidationError(err) {
			return nil, err
		}
		s.logger.WithFields(logrus.Fields{
			"model":       req.Model,
			"horizon":     req.Horizon,
			"history":     len(req.Ds),
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("Forecast failed")
		return nil, &EngineError{Model: req.Model, Err: err}
	}

	s.logger.WithFields(logrus.Fields{
		"model":       req.Model,
		"horizon":     req.Horizon,
		"history":     len(req.Ds),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Forecast completed")

	return assembleResponse(req, cadence, pred), nil
}

// assembleResponse reconstructs future timestamps from the last known
// timestamp and the inferred step, and merges the adapter output with the
// in-sample metrics into the uniform envelope. Forecast index i (1-based)
// lands at lastTs + i*step.
func assembleResponse(req *models.ForecastRequest, cadence CadenceInfo, pred *Prediction) *models.ForecastResponse {
	lastTs := req.Ds[len(req.Ds)-1]
	hasBounds := len(pred.Lower) > 0 && len(pred.Upper) > 0

	points := make([]models.ForecastPoint, 0, len(pred.Yhat))
	for i, yhat := range pred.Yhat {
		point := models.ForecastPoint{
			T:        isoFromSeconds(lastTs + cadence.StepSeconds*int64(i+1)),
			Yhat:     yhat,
			IsFuture: true,
		}
		if hasBounds {
			lower, upper := pred.Lower[i], pred.Upper[i]
			point.YhatLower = &lower
			point.YhatUpper = &upper
		}
		points = append(points, point)
	}

	meta := models.ForecastMeta{
		Horizon:      req.Horizon,
		HistoryCount: len(req.Ds),
		Metrics:      computeInSampleMetrics(req.Y, pred.Fitted),
	}
	if hasBounds {
		level := intervalLevel
		meta.IntervalLevel = &level
	}

	return &models.ForecastResponse{Points: points, Meta: meta}
}

// ForecastBatch applies the single-item pipeline independently to each item.
// By default a failing item is reported inline and its siblings proceed
// untouched; with batch_fail_fast enabled the first failure aborts the whole
// batch. Identifiers are echoed verbatim in submission order either way.
func (s *ForecastService) ForecastBatch(ctx context.Context, req *models.BatchForecastRequest) (*models.BatchForecastResponse, error) {
	items := make([]models.BatchForecastResponseItem, 0, len(req.Items))
	for i := range req.Items {
		item := &req.Items[i]
		resp, err := s.forecastItem(ctx, item)
		if err != nil {
			if s.cfg.Forecast.BatchFailFast {
				return nil, fmt.Errorf("batch item %q: %w", item.ID, err)
			}
			items = append(items, models.BatchForecastResponseItem{
				ID:    item.ID,
				Error: err.Error(),
			})
			continue
		}
		items = append(items, models.BatchForecastResponseItem{
			ID:     item.ID,
			Points: resp.Points,
			Meta:   &resp.Meta,
		})
	}
	return &models.BatchForecastResponse{Items: items}, nil
}

// forecastItem isolates one batch item: a panic inside an adapter must not
// take down sibling items.
func (s *ForecastService) forecastItem(ctx context.Context, item *models.BatchForecastRequestItem) (resp *models.ForecastResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithFields(logrus.Fields{
				"item_id": item.ID,
				"model":   item.Model,
			}).Errorf("Panic during batch forecast: %v", r)
			resp = nil
			err = fmt.Errorf("forecast panicked: %v", r)
		}
	}()
	return s.Forecast(ctx, &item.ForecastRequest)
}

// ListModels returns the static metadata of every supported model family.
func (s *ForecastService) ListModels() []models.ModelInfo {
	return []models.ModelInfo{
		{
			ID:          string(models.ModelETS),
			Name:        "ETS (Auto)",
			Type:        "statistical",
			Description: "Exponential smoothing with automatic model selection",
		},
		{
			ID:          string(models.ModelProphet),
			Name:        "Prophet",
			Type:        "statistical",
			Description: "Decomposable model with trend, seasonality, and holidays",
		},
		{
			ID:          string(models.ModelARIMA),
			Name:        "Auto-ARIMA",
			Type:        "statistical",
			Description: "ARIMA with automatic (p,d,q) order selection",
		},
		{
			ID:          string(models.ModelTheta),
			Name:        "Theta",
			Type:        "statistical",
			Description: "Simple yet effective theta method",
		},
		{
			ID:          string(models.ModelNeuralProphet),
			Name:        "NeuralProphet",
			Type:        "neural",
			Description: "Neural network-based Prophet successor",
		},
	}
}
