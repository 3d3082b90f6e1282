package models

// ModelName identifies a supported forecasting model family.
type ModelName string

const (
	ModelETS           ModelName = "ETS"
	ModelProphet       ModelName = "PROPHET"
	ModelARIMA         ModelName = "ARIMA"
	ModelTheta         ModelName = "THETA"
	ModelNeuralProphet ModelName = "NEURALPROPHET"
)

// SupportedModels lists every model the dispatcher knows about.
var SupportedModels = []ModelName{ModelETS, ModelProphet, ModelARIMA, ModelTheta, ModelNeuralProphet}

// IsValid reports whether the model name is one of the supported families.
func (m ModelName) IsValid() bool {
	switch m {
	case ModelETS, ModelProphet, ModelARIMA, ModelTheta, ModelNeuralProphet:
		return true
	}
	return false
}

// ForecastRequest is the inbound payload for a single forecast call.
// Ds carries epoch seconds (UTC) aligned one-to-one with Y.
type ForecastRequest struct {
	Model   ModelName              `json:"model" binding:"required"`
	Ds      []int64                `json:"ds" binding:"required"`
	Y       []float64              `json:"y" binding:"required"`
	Horizon int                    `json:"horizon" binding:"required,gte=1"`
	Config  map[string]interface{} `json:"config,omitempty"`
	// Regressors holds optional exogenous series aligned to Ds, PROPHET only.
	Regressors map[string][]float64 `json:"regressors,omitempty"`
	// RegressorsFuture holds future regressor values, each of length Horizon.
	RegressorsFuture map[string][]float64 `json:"regressorsFuture,omitempty"`
}

// ForecastPoint is a single emitted forecast observation. T is an RFC 3339
// UTC timestamp with second precision and a literal Z suffix.
type ForecastPoint struct {
	T         string   `json:"t"`
	Yhat      float64  `json:"yhat"`
	YhatLower *float64 `json:"yhatLower"`
	YhatUpper *float64 `json:"yhatUpper"`
	IsFuture  bool     `json:"isFuture"`
}

// ForecastMetrics carries in-sample accuracy diagnostics. All three values
// are nil when no fitted values were available for the run.
type ForecastMetrics struct {
	SampleCount int      `json:"sampleCount"`
	MAE         *float64 `json:"mae"`
	RMSE        *float64 `json:"rmse"`
	MAPE        *float64 `json:"mape"`
}

// ForecastMeta describes the run that produced the points.
type ForecastMeta struct {
	Horizon      int `json:"horizon"`
	HistoryCount int `json:"historyCount"`
	// IntervalLevel is reported only when at least one point carries bounds.
	IntervalLevel *float64        `json:"intervalLevel"`
	Metrics       ForecastMetrics `json:"metrics"`
}

// ForecastResponse is the uniform response envelope shared by every backend.
type ForecastResponse struct {
	Points []ForecastPoint `json:"points"`
	Meta   ForecastMeta    `json:"meta"`
}

// BatchForecastRequestItem is a ForecastRequest carrying a caller-supplied
// opaque identifier that is echoed verbatim in the response.
type BatchForecastRequestItem struct {
	ID string `json:"id" binding:"required"`
	ForecastRequest
}

// BatchForecastRequest wraps independent forecast items.
type BatchForecastRequest struct {
	Items []BatchForecastRequestItem `json:"items" binding:"required"`
}

// BatchForecastResponseItem is the per-item result. Exactly one of
// Points/Meta or Error is populated; a failed item never hides its siblings.
type BatchForecastResponseItem struct {
	ID     string          `json:"id"`
	Points []ForecastPoint `json:"points,omitempty"`
	Meta   *ForecastMeta   `json:"meta,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// BatchForecastResponse preserves one-to-one correspondence with the
// submitted items, in submission order.
type BatchForecastResponse struct {
	Items []BatchForecastResponseItem `json:"items"`
}

// ModelInfo is static metadata for the model listing endpoint.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
