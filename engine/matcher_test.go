package engine

import (
	"errors"
	"math"
	"testing"
)

// kmNorth places a candidate the given distance due north of the origin.
// With no longitude delta the haversine reduces to R*dLat, so the distance
// comes back exact up to float rounding.
func kmNorth(id uint, km float64, active bool, capacity float64) Candidate {
	return Candidate{
		ID:         id,
		Name:       "ngo",
		Lat:        km / (earthRadiusKm * math.Pi / 180),
		Lng:        0,
		CapacityKg: capacity,
		Active:     active,
	}
}

func TestFindNearbyOrderingAndCutoff(t *testing.T) {
	// Inserted out of distance order to verify the result is the nearest
	// three, not the first three inserted.
	ngos := []Candidate{
		kmNorth(1, 6.5, true, 50),
		kmNorth(2, 1.2, true, 50),
		kmNorth(3, 4.1, true, 50),
		kmNorth(4, 2.8, true, 50),
	}

	got, err := FindNearby(0, 0, ngos, MatchOptions{MaxRadiusKm: 10, TopN: 3})
	if err != nil {
		t.Fatalf("FindNearby: %v", err)
	}
	want := []float64{1.2, 2.8, 4.1}
	if len(got) != len(want) {
		t.Fatalf("got %d matches, want %d", len(got), len(want))
	}
	for i, m := range got {
		if math.Abs(m.DistanceKm-want[i]) > 1e-6 {
			t.Errorf("match %d distance = %v, want %v", i, m.DistanceKm, want[i])
		}
		if !m.WithinRadius {
			t.Errorf("match %d WithinRadius = false", i)
		}
	}
}

func TestFindNearbyRadiusExclusion(t *testing.T) {
	ngos := []Candidate{kmNorth(1, 15, true, 100)}
	got, err := FindNearby(0, 0, ngos, MatchOptions{MaxRadiusKm: 10, TopN: 100})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("NGO at 15km appeared in results with radius 10: %+v", got)
	}
}

func TestFindNearbyInactiveExclusion(t *testing.T) {
	ngos := []Candidate{kmNorth(1, 0.1, false, 100)}
	got, err := FindNearby(0, 0, ngos, MatchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("inactive NGO appeared in results: %+v", got)
	}
}

func TestFindNearbyEmptyList(t *testing.T) {
	got, err := FindNearby(12.9716, 77.5946, nil, MatchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestFindNearbyInvalidOrigin(t *testing.T) {
	for _, origin := range [][2]float64{{91, 0}, {-91, 0}, {0, 181}, {0, -181}} {
		_, err := FindNearby(origin[0], origin[1], nil, MatchOptions{})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("origin %v err = %v, want ErrInvalidInput", origin, err)
		}
	}
}

func TestFindNearbyTieBreaksByID(t *testing.T) {
	ngos := []Candidate{
		kmNorth(7, 3, true, 10),
		kmNorth(2, 3, true, 10),
	}
	got, err := FindNearby(0, 0, ngos, MatchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Candidate.ID != 2 || got[1].Candidate.ID != 7 {
		t.Errorf("equal-distance matches not ordered by ID: %+v", got)
	}
}

func TestFindNearbyCapacityIsAdvisory(t *testing.T) {
	ngos := []Candidate{
		kmNorth(1, 1, true, 3),  // under capacity for the request
		kmNorth(2, 2, true, 20), // comfortably within
	}
	got, err := FindNearby(0, 0, ngos, MatchOptions{RequestedKg: 12.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("under-capacity NGO was filtered out: %+v", got)
	}
	if got[0].WithinCapacity {
		t.Error("3kg-capacity NGO reported WithinCapacity for a 12.5kg request")
	}
	if !got[1].WithinCapacity {
		t.Error("20kg-capacity NGO not reported WithinCapacity for a 12.5kg request")
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Bangalore city centre to Whitefield, roughly 15.5km.
	d := Haversine(12.9716, 77.5946, 12.9698, 77.7500)
	if d < 15 || d > 18 {
		t.Errorf("Haversine = %v km, want roughly 15.5-17", d)
	}
	if z := Haversine(12.9716, 77.5946, 12.9716, 77.5946); z != 0 {
		t.Errorf("distance to self = %v, want 0", z)
	}
}
