// Package session tracks the runtime state of one battery run: which
// test is active, the scores recorded so far, and what was skipped.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/neuroscreen/internal/battery"
	"github.com/abhisek/neuroscreen/internal/composite"
	"github.com/abhisek/neuroscreen/internal/norms"
	"github.com/abhisek/neuroscreen/internal/store"
	"github.com/abhisek/neuroscreen/internal/textanalysis"
)

// Run is the state of one battery run. Scores are append-only; reads
// get copies so screens can't mutate recorded results.
type Run struct {
	BatteryID string
	StartTime time.Time

	norms   norms.Table
	order   []battery.Definition
	idx     int
	scores  []composite.AssessmentScore
	skipped []battery.TestID
	timings map[battery.TestID]int64
	errors  map[battery.TestID]int

	analysis *textanalysis.Result
}

// NewRun starts a battery run over the full test order.
func NewRun(table norms.Table) *Run {
	return &Run{
		BatteryID: uuid.NewString(),
		StartTime: time.Now().UTC(),
		norms:     table,
		order:     battery.All(),
		timings:   make(map[battery.TestID]int64),
		errors:    make(map[battery.TestID]int),
	}
}

// CurrentTest returns the test awaiting a result, or false when the
// run is finished.
func (r *Run) CurrentTest() (battery.Definition, bool) {
	if r.idx >= len(r.order) {
		return battery.Definition{}, false
	}
	return r.order[r.idx], true
}

// Done reports whether every test has been scored or skipped.
func (r *Run) Done() bool {
	return r.idx >= len(r.order)
}

// RecordScore normalizes and records the raw score for the current
// test, then advances to the next one.
func (r *Run) RecordScore(testID battery.TestID, raw float64, timeMs int64, errorCount int) error {
	def, ok := r.CurrentTest()
	if !ok {
		return fmt.Errorf("battery run already finished")
	}
	if def.ID != testID {
		return fmt.Errorf("expected result for %s, got %s", def.ID, testID)
	}

	z, err := r.norms.ZScore(testID, raw)
	if err != nil {
		return fmt.Errorf("normalize %s: %w", testID, err)
	}

	r.scores = append(r.scores, composite.AssessmentScore{
		TestID:      testID,
		RawScore:    raw,
		ZScore:      z,
		Domain:      def.Domain,
		CompletedAt: time.Now().UTC(),
	})
	r.timings[testID] = timeMs
	r.errors[testID] = errorCount
	r.idx++
	return nil
}

// Skip marks the current test as skipped and advances. The composite
// is computed from recorded tests only.
func (r *Run) Skip(testID battery.TestID) error {
	def, ok := r.CurrentTest()
	if !ok {
		return fmt.Errorf("battery run already finished")
	}
	if def.ID != testID {
		return fmt.Errorf("expected skip for %s, got %s", def.ID, testID)
	}
	r.skipped = append(r.skipped, testID)
	r.idx++
	return nil
}

// SetAnalysis attaches the speech sample analysis for the run.
func (r *Run) SetAnalysis(result *textanalysis.Result) {
	r.analysis = result
}

// Analysis returns the speech analysis, or nil if none was recorded.
func (r *Run) Analysis() *textanalysis.Result {
	return r.analysis
}

// Scores returns a copy of the scores recorded so far.
func (r *Run) Scores() []composite.AssessmentScore {
	out := make([]composite.AssessmentScore, len(r.scores))
	copy(out, r.scores)
	return out
}

// Skipped returns the skipped test IDs in order.
func (r *Run) Skipped() []battery.TestID {
	out := make([]battery.TestID, len(r.skipped))
	copy(out, r.skipped)
	return out
}

// SkippedStrings returns skipped test IDs as plain strings.
func (r *Run) SkippedStrings() []string {
	out := make([]string, len(r.skipped))
	for i, id := range r.skipped {
		out[i] = string(id)
	}
	return out
}

// Composite aggregates the scores recorded so far.
func (r *Run) Composite() *composite.CompositeScore {
	cs := composite.Aggregate(r.scores)
	return &cs
}

// AppendStart records the battery start event. A nil repo is a no-op
// so the battery still runs without a database.
func (r *Run) AppendStart(ctx context.Context, repo store.EventRepo) error {
	if repo == nil {
		return nil
	}
	return repo.AppendBattery(ctx, store.BatteryEventData{
		BatteryID: r.BatteryID,
		Action:    "start",
	})
}

// Finish persists the scores and the end event, returning the final
// composite. Safe to call with a nil repo.
func (r *Run) Finish(ctx context.Context, repo store.EventRepo) (*composite.CompositeScore, error) {
	cs := r.Composite()

	if repo == nil {
		return cs, nil
	}

	for _, s := range r.scores {
		err := repo.AppendScore(ctx, store.ScoreEventData{
			BatteryID:  r.BatteryID,
			TestID:     string(s.TestID),
			Domain:     string(s.Domain),
			RawScore:   s.RawScore,
			ZScore:     s.ZScore,
			TimeMs:     r.timings[s.TestID],
			ErrorCount: r.errors[s.TestID],
		})
		if err != nil {
			return nil, err
		}
	}

	if r.analysis != nil {
		err := repo.AppendAnalysis(ctx, store.AnalysisEventData{
			BatteryID:        r.BatteryID,
			RiskLevel:        string(r.analysis.RiskLevel),
			Confidence:       r.analysis.Confidence,
			WordCount:        r.analysis.Features.WordCount,
			SentenceCount:    r.analysis.Features.SentenceCount,
			LexicalDiversity: r.analysis.Features.LexicalDiversity,
			ClassifierName:   r.analysis.ClassifierName,
			Reasoning:        r.analysis.Reasoning,
		})
		if err != nil {
			return nil, err
		}
	}

	err := repo.AppendBattery(ctx, store.BatteryEventData{
		BatteryID:      r.BatteryID,
		Action:         "end",
		CompletedTests: len(r.scores),
		SkippedTests:   r.SkippedStrings(),
		DurationSecs:   int(time.Since(r.StartTime).Seconds()),
		CCS:            cs.CCS,
		Interpretation: string(cs.Interpretation),
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}
