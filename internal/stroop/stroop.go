// Package stroop generates congruent and incongruent color-word
// stimuli, scores responses against ink color, and computes the
// interference effect between the two conditions.
package stroop

import (
	"errors"
	"math/rand"
	"time"
)

// ErrIncompleteCondition is returned when the interference score is
// requested before both conditions have at least one correct trial.
var ErrIncompleteCondition = errors.New("both conditions need at least one correct trial")

// Color is one of the six palette colors.
type Color string

// Palette is the fixed stimulus palette.
var Palette = []Color{"red", "blue", "green", "yellow", "orange", "purple"}

// Condition selects stimulus congruency.
type Condition int

const (
	Congruent Condition = iota
	Incongruent
)

// Stimulus is one displayed color word.
type Stimulus struct {
	DisplayedWord Color
	InkColor      Color
	IsCongruent   bool
}

// TrialResult scores one response. Correctness always compares the
// selection to the ink color, never to the displayed word.
type TrialResult struct {
	Stimulus       Stimulus
	ResponseTimeMs int
	ChosenColor    Color
	CorrectColor   Color
	IsCorrect      bool
	CapturedAtMs   int64
}

// ConditionStats aggregates one condition's scored trials. The
// response-time average covers correct trials only; accuracy and error
// counts cover all trials.
type ConditionStats struct {
	Trials                int
	CorrectCount          int
	ErrorCount            int
	AccuracyPct           float64
	AverageResponseTimeMs float64
}

// Engine runs one interference test: practice trials first, then scored
// trials in both conditions.
type Engine struct {
	rng     *rand.Rand
	current *Stimulus
	trials  []TrialResult
	started time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewEngine creates an Engine with its own randomness source.
func NewEngine(seed int64) *Engine {
	return &Engine{
		rng:     rand.New(rand.NewSource(seed)),
		started: time.Now(),
		now:     time.Now,
	}
}

// NextStimulus draws a stimulus for the given condition and makes it
// the active one.
func (e *Engine) NextStimulus(condition Condition) Stimulus {
	word := Palette[e.rng.Intn(len(Palette))]
	ink := word
	if condition == Incongruent {
		// Uniform over the palette excluding the displayed word.
		offset := 1 + e.rng.Intn(len(Palette)-1)
		for i, c := range Palette {
			if c == word {
				ink = Palette[(i+offset)%len(Palette)]
				break
			}
		}
	}
	s := Stimulus{
		DisplayedWord: word,
		InkColor:      ink,
		IsCongruent:   ink == word,
	}
	e.current = &s
	return s
}

// TrialCondition alternates deterministically by trial index parity so
// both conditions get equal coverage over a block.
func TrialCondition(index int) Condition {
	if index%2 == 0 {
		return Congruent
	}
	return Incongruent
}

// Respond scores the selection against the active stimulus and records
// the trial. Returns the zero TrialResult if no stimulus is active.
func (e *Engine) Respond(selected Color, sinceStimulusMs int) TrialResult {
	if e.current == nil {
		return TrialResult{}
	}
	r := TrialResult{
		Stimulus:       *e.current,
		ResponseTimeMs: sinceStimulusMs,
		ChosenColor:    selected,
		CorrectColor:   e.current.InkColor,
		IsCorrect:      selected == e.current.InkColor,
		CapturedAtMs:   e.now().Sub(e.started).Milliseconds(),
	}
	e.trials = append(e.trials, r)
	e.current = nil
	return r
}

// Trials returns a copy of the scored trial list.
func (e *Engine) Trials() []TrialResult {
	out := make([]TrialResult, len(e.trials))
	copy(out, e.trials)
	return out
}

// Stats aggregates the trials recorded so far for one condition.
func (e *Engine) Stats(condition Condition) ConditionStats {
	return StatsFor(e.trials, condition)
}

// StatsFor aggregates a trial list for one condition. Pure: identical
// input yields identical output.
func StatsFor(trials []TrialResult, condition Condition) ConditionStats {
	var s ConditionStats
	var correctTimeSum float64
	for _, t := range trials {
		if matchesCondition(t, condition) {
			s.Trials++
			if t.IsCorrect {
				s.CorrectCount++
				correctTimeSum += float64(t.ResponseTimeMs)
			} else {
				s.ErrorCount++
			}
		}
	}
	if s.Trials > 0 {
		s.AccuracyPct = 100 * float64(s.CorrectCount) / float64(s.Trials)
	}
	if s.CorrectCount > 0 {
		s.AverageResponseTimeMs = correctTimeSum / float64(s.CorrectCount)
	}
	return s
}

// Interference is the mean incongruent response time minus the mean
// congruent response time, over correct trials. It requires at least
// one correct trial in each condition; otherwise it reports 0 with
// ErrIncompleteCondition so an absent effect is never presented as a
// real score.
func (e *Engine) Interference() (float64, error) {
	return InterferenceFor(e.trials)
}

// InterferenceFor computes the interference score for a trial list.
func InterferenceFor(trials []TrialResult) (float64, error) {
	cong := StatsFor(trials, Congruent)
	incong := StatsFor(trials, Incongruent)
	if cong.CorrectCount == 0 || incong.CorrectCount == 0 {
		return 0, ErrIncompleteCondition
	}
	return incong.AverageResponseTimeMs - cong.AverageResponseTimeMs, nil
}

func matchesCondition(t TrialResult, c Condition) bool {
	if c == Congruent {
		return t.Stimulus.IsCongruent
	}
	return !t.Stimulus.IsCongruent
}
