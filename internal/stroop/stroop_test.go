package stroop

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func trial(cond Condition, correct bool, timeMs int) TrialResult {
	s := Stimulus{DisplayedWord: "red", InkColor: "red", IsCongruent: true}
	if cond == Incongruent {
		s.InkColor = "blue"
		s.IsCongruent = false
	}
	chosen := s.InkColor
	if !correct {
		chosen = "green"
	}
	return TrialResult{
		Stimulus:       s,
		ResponseTimeMs: timeMs,
		ChosenColor:    chosen,
		CorrectColor:   s.InkColor,
		IsCorrect:      correct,
	}
}

func TestNextStimulus_Congruent(t *testing.T) {
	e := NewEngine(1)
	for i := 0; i < 50; i++ {
		s := e.NextStimulus(Congruent)
		if s.InkColor != s.DisplayedWord {
			t.Fatalf("congruent stimulus with ink %q word %q", s.InkColor, s.DisplayedWord)
		}
		if !s.IsCongruent {
			t.Fatal("IsCongruent = false on congruent stimulus")
		}
	}
}

func TestNextStimulus_Incongruent(t *testing.T) {
	e := NewEngine(1)
	for i := 0; i < 50; i++ {
		s := e.NextStimulus(Incongruent)
		if s.InkColor == s.DisplayedWord {
			t.Fatalf("incongruent stimulus with matching ink %q", s.InkColor)
		}
		if s.IsCongruent {
			t.Fatal("IsCongruent = true on incongruent stimulus")
		}
	}
}

func TestNextStimulus_InkAlwaysInPalette(t *testing.T) {
	e := NewEngine(7)
	inPalette := func(c Color) bool {
		for _, p := range Palette {
			if p == c {
				return true
			}
		}
		return false
	}
	for i := 0; i < 50; i++ {
		s := e.NextStimulus(Incongruent)
		if !inPalette(s.InkColor) || !inPalette(s.DisplayedWord) {
			t.Fatalf("stimulus outside palette: %+v", s)
		}
	}
}

func TestRespond_ComparesToInkColor(t *testing.T) {
	e := NewEngine(1)
	s := e.NextStimulus(Incongruent)

	// Choosing the displayed word is wrong on an incongruent trial.
	r := e.Respond(s.DisplayedWord, 800)
	if r.IsCorrect {
		t.Error("choosing displayed word scored correct; should compare to ink")
	}

	s = e.NextStimulus(Incongruent)
	r = e.Respond(s.InkColor, 700)
	if !r.IsCorrect {
		t.Error("choosing ink color scored incorrect")
	}
}

func TestStatsFor_AverageOverCorrectOnly(t *testing.T) {
	trials := []TrialResult{
		trial(Congruent, true, 500),
		trial(Congruent, true, 700),
		trial(Congruent, false, 5000),
	}
	s := StatsFor(trials, Congruent)

	if !almostEqual(s.AverageResponseTimeMs, 600) {
		t.Errorf("AverageResponseTimeMs = %f, want 600 (correct trials only)", s.AverageResponseTimeMs)
	}
	if !almostEqual(s.AccuracyPct, 100.0*2/3) {
		t.Errorf("AccuracyPct = %f, want %f", s.AccuracyPct, 100.0*2/3)
	}
	if s.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", s.ErrorCount)
	}
}

func TestInterferenceFor(t *testing.T) {
	trials := []TrialResult{
		trial(Congruent, true, 600),
		trial(Congruent, true, 800),
		trial(Incongruent, true, 1000),
		trial(Incongruent, true, 1200),
	}
	score, err := InterferenceFor(trials)
	if err != nil {
		t.Fatalf("InterferenceFor error: %v", err)
	}
	if !almostEqual(score, 400) {
		t.Errorf("score = %f, want 400", score)
	}
}

func TestInterferenceFor_Idempotent(t *testing.T) {
	trials := []TrialResult{
		trial(Congruent, true, 650),
		trial(Incongruent, true, 910),
	}
	a, _ := InterferenceFor(trials)
	b, _ := InterferenceFor(trials)
	if a != b {
		t.Errorf("not idempotent: %f vs %f", a, b)
	}
}

func TestInterferenceFor_Incomplete(t *testing.T) {
	trials := []TrialResult{
		trial(Congruent, true, 600),
		trial(Incongruent, false, 1000),
	}
	score, err := InterferenceFor(trials)
	if !errors.Is(err, ErrIncompleteCondition) {
		t.Fatalf("err = %v, want ErrIncompleteCondition", err)
	}
	if score != 0 {
		t.Errorf("score = %f, want 0 when incomplete", score)
	}
}

func TestTrialCondition_AlternatesByParity(t *testing.T) {
	for i := 0; i < 6; i++ {
		want := Congruent
		if i%2 == 1 {
			want = Incongruent
		}
		if got := TrialCondition(i); got != want {
			t.Errorf("TrialCondition(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestRespond_NoActiveStimulus(t *testing.T) {
	e := NewEngine(1)
	r := e.Respond("red", 500)
	if r != (TrialResult{}) {
		t.Errorf("Respond without stimulus = %+v, want zero", r)
	}
	if len(e.Trials()) != 0 {
		t.Errorf("trial recorded without stimulus")
	}
}
