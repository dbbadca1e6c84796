// Package engine holds the impact and matching core: pure functions that
// turn raw meal-log inputs into sustainability metrics, decide whether a
// surplus event warrants a redistribution alert, rank NGO candidates by
// distance, and fold historical logs into a sustainability score. Nothing
// in this package touches storage or the network; the same inputs always
// produce the same outputs, so callers may invoke it concurrently without
// coordination.
package engine

import (
	"errors"
	"math"
)

// ErrInvalidInput is returned when a caller passes values outside the
// documented domain (negative weights, out-of-range coordinates). Inputs
// are rejected rather than clamped so audit trails stay honest.
var ErrInvalidInput = errors.New("engine: invalid input")

const (
	// CO2eKgPerSurplusKg is the emission factor applied per kg of food
	// redistributed instead of landfilled.
	CO2eKgPerSurplusKg = 2.5

	// MealPortionKg is the assumed weight of one redistributable portion.
	MealPortionKg = 0.35
)

// Metrics are the derived figures for a single meal-preparation event.
// They are computed once when the log is created and never recomputed.
type Metrics struct {
	SurplusKg       float64 `json:"surplus_kg"`
	WastePct        float64 `json:"waste_pct"`
	CO2Kg           float64 `json:"co2_kg"`
	MealsEquivalent int     `json:"meals_equivalent"`
	AlertTriggered  bool    `json:"alert_triggered"`
}

// ComputeMetrics converts prepared/leftover weights into impact metrics.
//
// Surplus equals the full leftover quantity regardless of edibility; the
// edibility flag gates redistribution downstream, not the surplus figure.
// A zero prepared quantity yields 0% waste rather than an error.
func ComputeMetrics(preparedKg, leftoverKg float64, isEdible bool) (Metrics, error) {
	if preparedKg < 0 || leftoverKg < 0 {
		return Metrics{}, ErrInvalidInput
	}

	m := Metrics{SurplusKg: leftoverKg}
	if preparedKg > 0 {
		m.WastePct = (leftoverKg / preparedKg) * 100
	}
	m.CO2Kg = m.SurplusKg * CO2eKgPerSurplusKg
	m.MealsEquivalent = int(math.Floor(m.SurplusKg / MealPortionKg))
	m.AlertTriggered = ShouldAlert(isEdible, m.SurplusKg)
	return m, nil
}
