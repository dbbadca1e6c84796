package engine

import (
	"errors"
	"testing"
)

func TestComputeMetrics(t *testing.T) {
	cases := []struct {
		name       string
		prepared   float64
		leftover   float64
		edible     bool
		surplus    float64
		wastePct   float64
		co2        float64
		meals      int
		alert      bool
	}{
		{"typical lunch", 40, 12.5, true, 12.5, 31.25, 31.25, 35, true},
		{"nothing left over", 30, 0, true, 0, 0, 0, 0, false},
		{"zero prepared", 0, 0, true, 0, 0, 0, 0, false},
		{"inedible never alerts", 50, 20, false, 20, 40, 50, 57, false},
		{"just under a portion", 10, 0.34, true, 0.34, 3.4, 0.85, 0, false},
		{"exactly one portion", 10, 0.35, true, 0.35, 3.5, 0.875, 1, false},
		{"partial portion floors", 10, 0.69, true, 0.69, 6.9, 1.725, 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ComputeMetrics(tc.prepared, tc.leftover, tc.edible)
			if err != nil {
				t.Fatalf("ComputeMetrics: %v", err)
			}
			if m.SurplusKg != tc.surplus {
				t.Errorf("SurplusKg = %v, want %v", m.SurplusKg, tc.surplus)
			}
			if !almostEqual(m.WastePct, tc.wastePct) {
				t.Errorf("WastePct = %v, want %v", m.WastePct, tc.wastePct)
			}
			if !almostEqual(m.CO2Kg, tc.co2) {
				t.Errorf("CO2Kg = %v, want %v", m.CO2Kg, tc.co2)
			}
			if m.MealsEquivalent != tc.meals {
				t.Errorf("MealsEquivalent = %d, want %d", m.MealsEquivalent, tc.meals)
			}
			if m.AlertTriggered != tc.alert {
				t.Errorf("AlertTriggered = %v, want %v", m.AlertTriggered, tc.alert)
			}
		})
	}
}

func TestComputeMetricsRejectsNegativeWeights(t *testing.T) {
	for _, in := range [][2]float64{{-1, 0}, {0, -1}, {-5, -5}} {
		if _, err := ComputeMetrics(in[0], in[1], true); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ComputeMetrics(%v, %v) err = %v, want ErrInvalidInput", in[0], in[1], err)
		}
	}
}

func TestComputeMetricsDeterministic(t *testing.T) {
	a, err := ComputeMetrics(37.2, 8.85, true)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ComputeMetrics(37.2, 8.85, true)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same inputs produced different metrics: %+v vs %+v", a, b)
	}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
