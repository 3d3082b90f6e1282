package engine

// StatsModel selects the statsforecast-family estimator the engine should fit.
type StatsModel string

const (
	StatsModelAutoETS   StatsModel = "AutoETS"
	StatsModelAutoARIMA StatsModel = "AutoARIMA"
	StatsModelTheta     StatsModel = "Theta"
)

// StatsForecastRequest is the native surface of the statsforecast engine,
// shared by the ETS, ARIMA and THETA families.
type StatsForecastRequest struct {
	Model        StatsModel `json:"model"`
	Ds           []int64    `json:"ds"`
	Y            []float64  `json:"y"`
	Horizon      int        `json:"horizon"`
	SeasonLength int        `json:"season_length"`
	// Freq is a pandas offset alias ("h", "D", "W", "MS").
	Freq  string `json:"freq"`
	Level []int  `json:"level,omitempty"`
	// ModelSpec is the AutoETS component string (error/trend/seasonal),
	// ignored by the other estimators.
	ModelSpec  string `json:"model_spec,omitempty"`
	WithFitted bool   `json:"with_fitted,omitempty"`
}

// StatsForecastResponse carries the point forecast with optional 95% bounds
// and optional in-sample fitted values.
type StatsForecastResponse struct {
	Mean   []float64 `json:"mean"`
	Lo95   []float64 `json:"lo95,omitempty"`
	Hi95   []float64 `json:"hi95,omitempty"`
	Fitted []float64 `json:"fitted,omitempty"`
}

// Seasonality is the tri-state seasonality switch of the Prophet-family
// engines. It marshals to the native representation those libraries take:
// true, false, or the string "auto".
type Seasonality string

const (
	SeasonalityAuto Seasonality = "auto"
	SeasonalityOn   Seasonality = "on"
	SeasonalityOff  Seasonality = "off"
)

func (s Seasonality) MarshalJSON() ([]byte, error) {
	switch s {
	case SeasonalityOn:
		return []byte("true"), nil
	case SeasonalityOff:
		return []byte("false"), nil
	default:
		return []byte(`"auto"`), nil
	}
}

// ProphetRequest is the native surface of the Prophet engine.
type ProphetRequest struct {
	Ds                 []int64              `json:"ds"`
	Y                  []float64            `json:"y"`
	Horizon            int                  `json:"horizon"`
	Freq               string               `json:"freq"`
	IntervalWidth      float64              `json:"interval_width"`
	UncertaintySamples int                  `json:"uncertainty_samples"`
	SeasonalityMode    string               `json:"seasonality_mode"`
	YearlySeasonality  Seasonality          `json:"yearly_seasonality"`
	WeeklySeasonality  Seasonality          `json:"weekly_seasonality"`
	DailySeasonality   Seasonality          `json:"daily_seasonality"`
	Regressors         map[string][]float64 `json:"regressors,omitempty"`
	RegressorsFuture   map[string][]float64 `json:"regressors_future,omitempty"`
}

// ProphetResponse always carries bounds; Prophet estimates intervals natively.
type ProphetResponse struct {
	Yhat      []float64 `json:"yhat"`
	YhatLower []float64 `json:"yhat_lower"`
	YhatUpper []float64 `json:"yhat_upper"`
}

// NeuralProphetRequest is the native surface of the NeuralProphet engine.
type NeuralProphetRequest struct {
	Ds                []int64     `json:"ds"`
	Y                 []float64   `json:"y"`
	Horizon           int         `json:"horizon"`
	Freq              string      `json:"freq"`
	SeasonalityMode   string      `json:"seasonality_mode"`
	YearlySeasonality Seasonality `json:"yearly_seasonality"`
	WeeklySeasonality Seasonality `json:"weekly_seasonality"`
	DailySeasonality  Seasonality `json:"daily_seasonality"`
	Epochs            int         `json:"epochs"`
	LearningRate      float64     `json:"learning_rate"`
	BatchSize         int         `json:"batch_size"`
	NForecasts        int         `json:"n_forecasts"`
}

// NeuralProphetResponse carries point forecasts only; the engine does not
// produce prediction intervals.
type NeuralProphetResponse struct {
	Yhat []float64 `json:"yhat"`
}

// HealthResponse is the engine health probe payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse is the engine error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
