package services

import (
	"sort"
	"time"
)

// FrequencyClass is the calendar frequency bucket inferred from the sampling
// step. The Alias strings follow the pandas offset aliases the engines expect.
type FrequencyClass string

const (
	FrequencySubDaily FrequencyClass = "sub-daily"
	FrequencyDaily    FrequencyClass = "daily"
	FrequencyWeekly   FrequencyClass = "weekly"
	FrequencyMonthly  FrequencyClass = "monthly-or-coarser"
)

const (
	secondsPerHour = 3600
	secondsPerDay  = 86400
	secondsPerWeek = 604800
)

// CadenceInfo is the derived sampling profile of a series. It is owned by the
// forecast call that computed it and is never persisted.
type CadenceInfo struct {
	StepSeconds         int64
	Frequency           FrequencyClass
	DefaultSeasonLength int
}

// InferCadence derives the full sampling profile from raw epoch-second
// timestamps.
func InferCadence(ds []int64) CadenceInfo {
	step := InferStepSeconds(ds)
	freq := ClassifyFrequency(step)
	return CadenceInfo{
		StepSeconds:         step,
		Frequency:           freq,
		DefaultSeasonLength: freq.DefaultSeasonLength(),
	}
}

// InferStepSeconds returns the representative time step of the series as the
// median of the positive consecutive differences. The median tolerates
// missing-sample gaps and duplicate timestamps that would skew a mean. With
// fewer than two timestamps, or no positive differences at all, it falls back
// to one day.
func InferStepSeconds(ds []int64) int64 {
	if len(ds) < 2 {
		return secondsPerDay
	}

	diffs := make([]int64, 0, len(ds)-1)
	for i := 1; i < len(ds); i++ {
		if d := ds[i] - ds[i-1]; d > 0 {
			diffs = append(diffs, d)
		}
	}
	if len(diffs) == 0 {
		return secondsPerDay
	}

	sort.Slice(diffs, func(i, j int) bool { return diffs[i] < diffs[j] })
	mid := len(diffs) / 2
	if len(diffs)%2 == 1 {
		return diffs[mid]
	}
	// Even count: average of the two middle values, truncated.
	return (diffs[mid-1] + diffs[mid]) / 2
}

// ClassifyFrequency buckets a step into a frequency class. Boundaries are
// inclusive on the lower class: exactly one hour is still sub-daily.
func ClassifyFrequency(stepSeconds int64) FrequencyClass {
	switch {
	case stepSeconds <= secondsPerHour:
		return FrequencySubDaily
	case stepSeconds <= secondsPerDay:
		return FrequencyDaily
	case stepSeconds <= secondsPerWeek:
		return FrequencyWeekly
	default:
		return FrequencyMonthly
	}
}

// Alias returns the pandas-style offset alias the forecasting engines expect
// for this frequency class.
func (f FrequencyClass) Alias() string {
	switch f {
	case FrequencySubDaily:
		return "h"
	case FrequencyDaily:
		return "D"
	case FrequencyWeekly:
		return "W"
	default:
		return "MS"
	}
}

// DefaultSeasonLength returns the heuristic seasonal period for the class:
// 24 for hourly cadence (diurnal cycle), 7 for daily (weekly cycle), 52 for
// weekly and 12 for monthly (annual cycle). Request config may override it.
func (f FrequencyClass) DefaultSeasonLength() int {
	switch f {
	case FrequencySubDaily:
		return 24
	case FrequencyDaily:
		return 7
	case FrequencyWeekly:
		return 52
	default:
		return 12
	}
}

// degradeSeasonLength applies the ETS data-sufficiency guard. Fitting a
// seasonal model needs at least two full cycles of history; when that is not
// available the period degrades through a fixed ladder (quarterly 13 for
// weekly-or-finer data, then 7, then no seasonality) instead of forcing a
// degenerate seasonal fit.
func degradeSeasonLength(seasonLength int, historyLen int, stepSeconds int64) int {
	switch {
	case historyLen >= 2*seasonLength:
		return seasonLength
	case historyLen >= 26 && stepSeconds <= secondsPerWeek:
		return 13
	case historyLen >= 14:
		return 7
	default:
		return 1
	}
}

// isoFromSeconds renders epoch seconds as second-precision RFC 3339 UTC with
// a literal Z suffix.
func isoFromSeconds(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format(time.RFC3339)
}
