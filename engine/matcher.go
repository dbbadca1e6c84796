package engine

import (
	"math"
	"sort"
)

const earthRadiusKm = 6371

// Candidate is the slice of an NGO record the matcher needs. The caller
// owns the backing store; the matcher only reads these transiently.
type Candidate struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	CapacityKg float64 `json:"capacity_kg"`
	Active     bool    `json:"active"`
}

// Match is one ranked NGO suggestion for a surplus event. Capacity is
// advisory: an under-capacity NGO may still take a partial load, so it is
// reported but never used to exclude a candidate.
type Match struct {
	Candidate      Candidate `json:"ngo"`
	DistanceKm     float64   `json:"distance_km"`
	WithinRadius   bool      `json:"within_radius"`
	WithinCapacity bool      `json:"within_capacity"`
}

// MatchOptions tune the nearby search. Zero values fall back to the
// defaults the dispatch flow uses.
type MatchOptions struct {
	MaxRadiusKm float64 // default 10
	TopN        int     // default 3
	RequestedKg float64 // surplus quantity, for the capacity flag
}

const (
	defaultMaxRadiusKm = 10
	defaultTopN        = 3
)

// FindNearby ranks active NGOs by great-circle distance from the origin,
// keeps those within the radius, and returns the nearest TopN. Ties on
// distance break by NGO ID so the ordering is deterministic. An empty
// result is a valid outcome, not an error; the caller decides whether to
// widen the search.
func FindNearby(originLat, originLng float64, ngos []Candidate, opts MatchOptions) ([]Match, error) {
	if originLat < -90 || originLat > 90 || originLng < -180 || originLng > 180 {
		return nil, ErrInvalidInput
	}
	if opts.MaxRadiusKm <= 0 {
		opts.MaxRadiusKm = defaultMaxRadiusKm
	}
	if opts.TopN <= 0 {
		opts.TopN = defaultTopN
	}

	matches := make([]Match, 0, len(ngos))
	for _, n := range ngos {
		if !n.Active {
			continue
		}
		d := Haversine(originLat, originLng, n.Lat, n.Lng)
		if d > opts.MaxRadiusKm {
			continue
		}
		matches = append(matches, Match{
			Candidate:      n,
			DistanceKm:     d,
			WithinRadius:   true,
			WithinCapacity: n.CapacityKg >= opts.RequestedKg,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].Candidate.ID < matches[j].Candidate.ID
	})

	if len(matches) > opts.TopN {
		matches = matches[:opts.TopN]
	}
	return matches, nil
}

// Haversine returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
