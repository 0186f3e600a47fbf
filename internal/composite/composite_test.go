package composite

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/neuroscreen/internal/battery"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func fullBattery() []AssessmentScore {
	// Domain z-scores from the reference example: weighted sum 0.525.
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []AssessmentScore{
		{TestID: battery.TestMemory, ZScore: 1.0, Domain: battery.DomainMemory, CompletedAt: now},
		{TestID: battery.TestFluency, ZScore: 0.5, Domain: battery.DomainLanguage, CompletedAt: now},
		{TestID: battery.TestTrails, ZScore: -0.2, Domain: battery.DomainExecutive, CompletedAt: now},
		{TestID: battery.TestStroop, ZScore: 0.3, Domain: battery.DomainAttention, CompletedAt: now},
		{TestID: battery.TestPicture, ZScore: 0.8, Domain: battery.DomainLanguage, CompletedAt: now},
	}
}

func TestAggregate_FullBattery(t *testing.T) {
	cs := Aggregate(fullBattery())

	if !almostEqual(cs.CCS, 0.525) {
		t.Errorf("CCS = %f, want 0.525", cs.CCS)
	}
	if cs.Interpretation != Healthy {
		t.Errorf("Interpretation = %s, want healthy", cs.Interpretation)
	}
	if len(cs.IndividualScores) != 5 {
		t.Errorf("IndividualScores = %d, want 5", len(cs.IndividualScores))
	}
}

func TestAggregate_PartialBatteryKeepsFullWeights(t *testing.T) {
	scores := fullBattery()[:2] // memory 1.0*0.35 + fluency 0.5*0.15
	cs := Aggregate(scores)

	if !almostEqual(cs.CCS, 0.425) {
		t.Errorf("CCS = %f, want 0.425 (weights not renormalized)", cs.CCS)
	}
}

func TestAggregate_EmptyScores(t *testing.T) {
	cs := Aggregate(nil)
	if cs.CCS != 0 {
		t.Errorf("CCS = %f, want 0", cs.CCS)
	}
	if len(cs.IndividualScores) != 0 {
		t.Errorf("IndividualScores = %d, want 0", len(cs.IndividualScores))
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	scores := fullBattery()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	a := aggregateAt(scores, at)
	b := aggregateAt(scores, at)

	if a.CCS != b.CCS || a.Interpretation != b.Interpretation {
		t.Errorf("not idempotent: %+v vs %+v", a, b)
	}
}

func TestAggregate_SnapshotNotLiveSlice(t *testing.T) {
	scores := fullBattery()
	cs := Aggregate(scores)

	scores[0].ZScore = -10
	if cs.IndividualScores[0].ZScore == -10 {
		t.Error("CompositeScore shares backing array with input")
	}
}

func TestAggregate_DomainBreakdown(t *testing.T) {
	cs := Aggregate(fullBattery())

	// Language holds fluency (0.5) and picture (0.8).
	if !almostEqual(cs.DomainBreakdown[battery.DomainLanguage], 0.65) {
		t.Errorf("language breakdown = %f, want 0.65", cs.DomainBreakdown[battery.DomainLanguage])
	}
	if !almostEqual(cs.DomainBreakdown[battery.DomainMemory], 1.0) {
		t.Errorf("memory breakdown = %f, want 1.0", cs.DomainBreakdown[battery.DomainMemory])
	}
}

func TestInterpret_Bands(t *testing.T) {
	cases := []struct {
		ccs  float64
		want Interpretation
	}{
		{0.525, Healthy},
		{0.0, Healthy},
		{-0.001, Mild},
		{-1.5, Mild},
		{-1.501, Strong},
		{-3.0, Strong},
	}
	for _, c := range cases {
		if got := Interpret(c.ccs); got != c.want {
			t.Errorf("Interpret(%f) = %s, want %s", c.ccs, got, c.want)
		}
	}
}

func TestBatteryWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, d := range battery.All() {
		sum += d.Weight
	}
	if !almostEqual(sum, 1.0) {
		t.Errorf("weight sum = %f, want 1.0", sum)
	}
}
