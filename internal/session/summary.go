package session

import (
	"time"

	"github.com/abhisek/neuroscreen/internal/composite"
)

// RunSummary holds the data displayed on the summary screen.
type RunSummary struct {
	BatteryID      string
	Duration       time.Duration
	CompletedTests int
	SkippedTests   []string
	Composite      *composite.CompositeScore
}

// BuildSummary creates a RunSummary from the run's current state.
func BuildSummary(r *Run) *RunSummary {
	return &RunSummary{
		BatteryID:      r.BatteryID,
		Duration:       time.Since(r.StartTime),
		CompletedTests: len(r.scores),
		SkippedTests:   r.SkippedStrings(),
		Composite:      r.Composite(),
	}
}
