package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics_PerfectFit(t *testing.T) {
	mae, rmse, mape := ComputeMetrics([]float64{1, 2, 3}, []float64{1, 2, 3})

	require.NotNil(t, mae)
	require.NotNil(t, rmse)
	require.NotNil(t, mape)
	assert.Zero(t, *mae)
	assert.Zero(t, *rmse)
	assert.Zero(t, *mape)
}

func TestComputeMetrics_KnownValues(t *testing.T) {
	actual := []float64{10, 20, 30}
	predicted := []float64{12, 18, 33}

	mae, rmse, mape := ComputeMetrics(actual, predicted)

	require.NotNil(t, mae)
	require.NotNil(t, rmse)
	require.NotNil(t, mape)
	// residuals -2, 2, -3
	assert.InDelta(t, 7.0/3.0, *mae, 1e-9)
	assert.InDelta(t, 2.38048, *rmse, 1e-4)
	// 20%, 10%, 10% -> 13.333%
	assert.InDelta(t, 40.0/3.0, *mape, 1e-9)
}

func TestComputeMetrics_ZeroActualsExcludedFromMAPE(t *testing.T) {
	mae, rmse, mape := ComputeMetrics([]float64{0, 2}, []float64{1, 2})

	require.NotNil(t, mae)
	require.NotNil(t, rmse)
	require.NotNil(t, mape)
	assert.InDelta(t, 0.5, *mae, 1e-9)
	assert.Zero(t, *mape)

	_ = rmse
}

func TestComputeMetrics_AllZeroActuals(t *testing.T) {
	mae, rmse, mape := ComputeMetrics([]float64{0, 0}, []float64{1, 1})

	require.NotNil(t, mae)
	require.NotNil(t, rmse)
	assert.Nil(t, mape)
	assert.InDelta(t, 1.0, *mae, 1e-9)
}

func TestComputeMetrics_Empty(t *testing.T) {
	mae, rmse, mape := ComputeMetrics(nil, nil)
	assert.Nil(t, mae)
	assert.Nil(t, rmse)
	assert.Nil(t, mape)

	mae, rmse, mape = ComputeMetrics([]float64{1}, nil)
	assert.Nil(t, mae)
	assert.Nil(t, rmse)
	assert.Nil(t, mape)
}

func TestComputeMetrics_TruncatesToShorter(t *testing.T) {
	mae, _, _ := ComputeMetrics([]float64{1, 2, 3, 100}, []float64{1, 2, 3})
	require.NotNil(t, mae)
	assert.Zero(t, *mae)
}

func TestComputeInSampleMetrics(t *testing.T) {
	m := computeInSampleMetrics([]float64{1, 2, 3}, []float64{1, 2, 3})
	assert.Equal(t, 3, m.SampleCount)
	require.NotNil(t, m.MAE)
	assert.Zero(t, *m.MAE)

	noFit := computeInSampleMetrics([]float64{1, 2, 3}, nil)
	assert.Equal(t, 3, noFit.SampleCount)
	assert.Nil(t, noFit.MAE)
	assert.Nil(t, noFit.RMSE)
	assert.Nil(t, noFit.MAPE)
}
