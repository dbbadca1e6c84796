package engine

import "math"

// Grade is the letter tier a sustainability score maps to.
type Grade string

const (
	GradePlatinum Grade = "Platinum"
	GradeGold     Grade = "Gold"
	GradeSilver   Grade = "Silver"
	GradeBronze   Grade = "Bronze"
)

// LogSample is the slice of a meal log the aggregator reads.
type LogSample struct {
	WastePct  float64
	SurplusKg float64
}

// Summary is the rolled-up sustainability report for a window of logs.
type Summary struct {
	AvgWastePct           float64 `json:"avg_waste_pct"`
	RedistributionRatePct float64 `json:"redistribution_rate_pct"`
	Score                 float64 `json:"score"`
	Grade                 Grade   `json:"grade"`
}

// Aggregate folds a window of meal logs into a sustainability score and
// grade. redistributedKg is the quantity confirmed as picked up within the
// same window; pickup confirmation is external state, so the caller
// supplies it.
//
// Zero total surplus yields a 100% redistribution rate: no surplus means
// nothing was wasted. Empty input yields zeros for the waste average, not
// an error. The waste sub-term (100 - avgWaste*1.5) is deliberately left
// unclamped before blending, matching the historical formula; only the
// final blend is clamped to [0,100].
func Aggregate(logs []LogSample, redistributedKg float64) Summary {
	var wasteSum, surplusSum float64
	for _, l := range logs {
		wasteSum += l.WastePct
		surplusSum += l.SurplusKg
	}

	var s Summary
	if len(logs) > 0 {
		s.AvgWastePct = wasteSum / float64(len(logs))
	}
	if surplusSum > 0 {
		s.RedistributionRatePct = (redistributedKg / surplusSum) * 100
	} else {
		s.RedistributionRatePct = 100
	}

	wasteScore := 100 - s.AvgWastePct*1.5
	s.Score = clamp(wasteScore*0.6+s.RedistributionRatePct*0.4, 0, 100)
	s.Grade = ScoreGrade(s.Score)
	return s
}

// ScoreGrade maps a 0-100 score to its tier. Boundaries are inclusive on
// the lower bound of each tier.
func ScoreGrade(score float64) Grade {
	switch {
	case score >= 90:
		return GradePlatinum
	case score >= 75:
		return GradeGold
	case score >= 60:
		return GradeSilver
	default:
		return GradeBronze
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
