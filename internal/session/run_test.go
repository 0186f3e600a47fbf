package session

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/neuroscreen/internal/battery"
	"github.com/abhisek/neuroscreen/internal/composite"
	"github.com/abhisek/neuroscreen/internal/norms"
	"github.com/abhisek/neuroscreen/internal/store"
	"github.com/abhisek/neuroscreen/internal/textanalysis"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	diff := a - b
	return diff < epsilon && diff > -epsilon
}

func TestRunAdvancesThroughBatteryOrder(t *testing.T) {
	r := NewRun(norms.DefaultTable())

	want := []battery.TestID{
		battery.TestMemory,
		battery.TestFluency,
		battery.TestTrails,
		battery.TestStroop,
		battery.TestPicture,
	}
	for _, id := range want {
		def, ok := r.CurrentTest()
		if !ok {
			t.Fatalf("run finished early, expected %s", id)
		}
		if def.ID != id {
			t.Fatalf("current test = %s, want %s", def.ID, id)
		}
		if err := r.Skip(id); err != nil {
			t.Fatalf("skip %s: %v", id, err)
		}
	}
	if !r.Done() {
		t.Error("expected run to be done")
	}
}

func TestRecordScoreNormalizes(t *testing.T) {
	r := NewRun(norms.DefaultTable())

	// Memory norms are mean 18, stddev 5.
	if err := r.RecordScore(battery.TestMemory, 23, 90000, 0); err != nil {
		t.Fatalf("record: %v", err)
	}

	scores := r.Scores()
	if len(scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(scores))
	}
	if !almostEqual(scores[0].ZScore, 1.0) {
		t.Errorf("z = %v, want 1.0", scores[0].ZScore)
	}
	if scores[0].Domain != battery.DomainMemory {
		t.Errorf("domain = %s, want memory", scores[0].Domain)
	}
}

func TestRecordScoreRejectsWrongTest(t *testing.T) {
	r := NewRun(norms.DefaultTable())

	if err := r.RecordScore(battery.TestTrails, 80, 0, 0); err == nil {
		t.Fatal("expected error recording out-of-order test")
	}
}

func TestRecordScoreAfterFinishFails(t *testing.T) {
	r := NewRun(norms.DefaultTable())
	for _, def := range battery.All() {
		if err := r.Skip(def.ID); err != nil {
			t.Fatalf("skip: %v", err)
		}
	}
	if err := r.RecordScore(battery.TestMemory, 20, 0, 0); err == nil {
		t.Fatal("expected error after run finished")
	}
}

func TestScoresReturnsCopy(t *testing.T) {
	r := NewRun(norms.DefaultTable())
	if err := r.RecordScore(battery.TestMemory, 18, 0, 0); err != nil {
		t.Fatalf("record: %v", err)
	}

	scores := r.Scores()
	scores[0].ZScore = 99

	if r.Scores()[0].ZScore == 99 {
		t.Error("mutating the returned slice should not affect the run")
	}
}

func TestCompositeFromPartialRun(t *testing.T) {
	r := NewRun(norms.DefaultTable())
	if err := r.RecordScore(battery.TestMemory, 23, 0, 0); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := r.Skip(battery.TestFluency); err != nil {
		t.Fatalf("skip: %v", err)
	}

	cs := r.Composite()
	// Only memory contributes: 1.0 * 0.35.
	if !almostEqual(cs.CCS, 0.35) {
		t.Errorf("ccs = %v, want 0.35", cs.CCS)
	}
}

func TestFinishPersistsEvents(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	repo := s.EventRepo()
	ctx := context.Background()

	r := NewRun(norms.DefaultTable())
	if err := r.AppendStart(ctx, repo); err != nil {
		t.Fatalf("append start: %v", err)
	}

	if err := r.RecordScore(battery.TestMemory, 23, 120000, 1); err != nil {
		t.Fatalf("record: %v", err)
	}
	for _, id := range []battery.TestID{battery.TestFluency, battery.TestTrails, battery.TestStroop} {
		if err := r.Skip(id); err != nil {
			t.Fatalf("skip: %v", err)
		}
	}
	if err := r.RecordScore(battery.TestPicture, 70, 60000, 0); err != nil {
		t.Fatalf("record: %v", err)
	}
	r.SetAnalysis(&textanalysis.Result{
		RiskLevel:      textanalysis.RiskLow,
		Confidence:     0.5,
		ClassifierName: "heuristic",
	})

	cs, err := r.Finish(ctx, repo)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if cs.Interpretation != composite.Healthy {
		t.Errorf("interpretation = %s, want healthy", cs.Interpretation)
	}

	runs, err := repo.CompletedBatteries(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("completed batteries: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 completed run, got %d", len(runs))
	}
	if runs[0].CompletedTests != 2 {
		t.Errorf("completed tests = %d, want 2", runs[0].CompletedTests)
	}
	if len(runs[0].SkippedTests) != 3 {
		t.Errorf("skipped = %v, want 3 entries", runs[0].SkippedTests)
	}

	records, err := repo.ScoresForBattery(ctx, r.BatteryID)
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 score records, got %d", len(records))
	}
	if records[0].TimeMs != 120000 || records[0].ErrorCount != 1 {
		t.Errorf("memory record = %+v", records[0])
	}
}

func TestFinishWithoutRepo(t *testing.T) {
	r := NewRun(norms.DefaultTable())
	for _, def := range battery.All() {
		if err := r.Skip(def.ID); err != nil {
			t.Fatalf("skip: %v", err)
		}
	}
	cs, err := r.Finish(context.Background(), nil)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if cs == nil {
		t.Fatal("expected composite")
	}
}

func TestBuildSummary(t *testing.T) {
	r := NewRun(norms.DefaultTable())
	r.StartTime = time.Now().Add(-10 * time.Minute)
	if err := r.RecordScore(battery.TestMemory, 18, 0, 0); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := r.Skip(battery.TestFluency); err != nil {
		t.Fatalf("skip: %v", err)
	}

	sum := BuildSummary(r)
	if sum.CompletedTests != 1 {
		t.Errorf("completed = %d, want 1", sum.CompletedTests)
	}
	if len(sum.SkippedTests) != 1 || sum.SkippedTests[0] != "verbal-fluency" {
		t.Errorf("skipped = %v", sum.SkippedTests)
	}
	if sum.Duration < 10*time.Minute {
		t.Errorf("duration = %v, want >= 10m", sum.Duration)
	}
}
