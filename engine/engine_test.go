package engine

import "testing"

// Full pipeline for one surplus event: metrics -> alert decision -> NGO
// ranking, using the numbers a typical lunch service produces.
func TestSurplusEventPipeline(t *testing.T) {
	m, err := ComputeMetrics(40, 12.5, true)
	if err != nil {
		t.Fatalf("ComputeMetrics: %v", err)
	}
	if m.SurplusKg != 12.5 || !almostEqual(m.WastePct, 31.25) ||
		!almostEqual(m.CO2Kg, 31.25) || m.MealsEquivalent != 35 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
	if !m.AlertTriggered {
		t.Fatal("12.5kg edible surplus did not trigger an alert")
	}

	ngos := []Candidate{
		kmNorth(1, 6.5, true, 10),
		kmNorth(2, 2.8, true, 50),
		kmNorth(3, 15, true, 100), // outside the radius
	}
	matches, err := FindNearby(0, 0, ngos, MatchOptions{RequestedKg: m.SurplusKg})
	if err != nil {
		t.Fatalf("FindNearby: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2 within 10km", len(matches))
	}
	if matches[0].Candidate.ID != 2 || matches[1].Candidate.ID != 1 {
		t.Errorf("matches not ordered nearest-first: %+v", matches)
	}
	if matches[0].Candidate.CapacityKg < m.SurplusKg && matches[0].WithinCapacity {
		t.Error("capacity flag inconsistent with requested quantity")
	}
}
