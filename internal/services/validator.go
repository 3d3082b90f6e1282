package services

import (
	"github.com/kairosml/kairos-go/internal/models"
)

// ValidateForecastRequest enforces the structural and cross-field invariants
// of a forecast request before any model is invoked. Checks run in a fixed
// order and the first failure terminates validation; the returned error is
// always a *ValidationError.
func ValidateForecastRequest(req *models.ForecastRequest) error {
	if len(req.Ds) != len(req.Y) {
		return NewValidationError("training data length mismatch: %d timestamps vs %d values", len(req.Ds), len(req.Y))
	}
	if len(req.Ds) < 2 {
		return NewValidationError("at least 2 observations are required, got %d", len(req.Ds))
	}

	if req.Regressors != nil && req.Model != models.ModelProphet {
		return NewValidationError("regressors are only supported for PROPHET, got model %s", req.Model)
	}

	if req.RegressorsFuture != nil && req.Regressors == nil {
		return NewValidationError("regressorsFuture was provided without regressors")
	}

	if req.Regressors != nil {
		if req.RegressorsFuture == nil {
			return NewValidationError("regressorsFuture is required when regressors are provided")
		}
		for key, values := range req.Regressors {
			if len(values) != len(req.Y) {
				return NewValidationError("regressor %q length mismatch: got %d, expected %d", key, len(values), len(req.Y))
			}
			if _, ok := req.RegressorsFuture[key]; !ok {
				return NewValidationError("future values for regressor %q are missing from regressorsFuture", key)
			}
		}
	}

	if req.RegressorsFuture != nil {
		for key, values := range req.RegressorsFuture {
			if len(values) != req.Horizon {
				return NewValidationError("future regressor %q length mismatch: got %d, expected horizon %d", key, len(values), req.Horizon)
			}
		}
	}

	return nil
}
