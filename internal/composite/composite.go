// Package composite combines per-test Z-scores into the Composite
// Cognitive Score (CCS) and assigns its interpretation band.
package composite

import (
	"time"

	"github.com/abhisek/neuroscreen/internal/battery"
)

// Interpretation is the clinical-style band for a CCS value.
type Interpretation string

const (
	// Healthy: performance above the population mean overall.
	Healthy Interpretation = "healthy"
	// Mild: below the mean but within 1.5 weighted SD.
	Mild Interpretation = "mild"
	// Strong: more than 1.5 weighted SD below the mean.
	Strong Interpretation = "strong"
)

// mildFloor separates the mild and strong bands.
const mildFloor = -1.5

// AssessmentScore is one completed test's normalized result. Immutable
// once produced.
type AssessmentScore struct {
	TestID      battery.TestID `json:"test_id"`
	RawScore    float64        `json:"raw_score"`
	ZScore      float64        `json:"z_score"`
	Domain      battery.Domain `json:"domain"`
	CompletedAt time.Time      `json:"completed_at"`
}

// CompositeScore is the battery-level result, recomputable
// deterministically from IndividualScores.
type CompositeScore struct {
	CCS              float64                    `json:"ccs"`
	Interpretation   Interpretation             `json:"interpretation"`
	IndividualScores []AssessmentScore          `json:"individual_scores"`
	DomainBreakdown  map[battery.Domain]float64 `json:"domain_breakdown"`
	CompletedAt      time.Time                  `json:"completed_at"`
}

// Aggregate combines whatever subset of test scores exists into a
// CompositeScore. Weights are the full-battery weights, intentionally
// not renormalized for partial batteries: a partial CCS stays on the
// same weighted scale as the interpretation thresholds.
func Aggregate(scores []AssessmentScore) CompositeScore {
	return aggregateAt(scores, time.Now().UTC())
}

// aggregateAt is the pure core; the timestamp is injected for tests.
func aggregateAt(scores []AssessmentScore, completedAt time.Time) CompositeScore {
	var ccs float64
	for _, s := range scores {
		ccs += s.ZScore * battery.Weight(s.TestID)
	}

	// Copy the score list: callers receive a snapshot, not a live slice.
	individual := make([]AssessmentScore, len(scores))
	copy(individual, scores)

	return CompositeScore{
		CCS:              ccs,
		Interpretation:   Interpret(ccs),
		IndividualScores: individual,
		DomainBreakdown:  domainBreakdown(scores),
		CompletedAt:      completedAt,
	}
}

// Interpret maps a CCS to its band. Exact boundary values land in the
// better band: 0.0 is healthy, -1.5 is mild.
func Interpret(ccs float64) Interpretation {
	switch {
	case ccs >= 0:
		return Healthy
	case ccs >= mildFloor:
		return Mild
	default:
		return Strong
	}
}

// domainBreakdown averages Z-scores within each clinical domain.
func domainBreakdown(scores []AssessmentScore) map[battery.Domain]float64 {
	sums := make(map[battery.Domain]float64)
	counts := make(map[battery.Domain]int)
	for _, s := range scores {
		sums[s.Domain] += s.ZScore
		counts[s.Domain]++
	}
	out := make(map[battery.Domain]float64, len(sums))
	for d, sum := range sums {
		out[d] = sum / float64(counts[d])
	}
	return out
}
