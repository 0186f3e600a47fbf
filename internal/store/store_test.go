package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryBatteries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendBattery(ctx, BatteryEventData{
		BatteryID: "b-1",
		Action:    "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendBattery(ctx, BatteryEventData{
		BatteryID:      "b-1",
		Action:         "end",
		CompletedTests: 4,
		SkippedTests:   []string{"color-word"},
		DurationSecs:   900,
		CCS:            0.4,
		Interpretation: "healthy",
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	runs, err := repo.CompletedBatteries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("completed batteries: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	run := runs[0]
	if run.BatteryID != "b-1" {
		t.Errorf("battery_id = %q, want b-1", run.BatteryID)
	}
	if run.CompletedTests != 4 {
		t.Errorf("completed_tests = %d, want 4", run.CompletedTests)
	}
	if len(run.SkippedTests) != 1 || run.SkippedTests[0] != "color-word" {
		t.Errorf("skipped_tests = %v, want [color-word]", run.SkippedTests)
	}
	if run.Interpretation != "healthy" {
		t.Errorf("interpretation = %q, want healthy", run.Interpretation)
	}
}

func TestCompletedBatteriesNewestFirstAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, id := range []string{"b-1", "b-2", "b-3"} {
		err := repo.AppendBattery(ctx, BatteryEventData{
			BatteryID:      id,
			Action:         "end",
			CompletedTests: i + 1,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	runs, err := repo.CompletedBatteries(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("completed batteries: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].BatteryID != "b-3" || runs[1].BatteryID != "b-2" {
		t.Errorf("order = [%s %s], want [b-3 b-2]", runs[0].BatteryID, runs[1].BatteryID)
	}
}

func TestAppendAndQueryScores(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	scores := []ScoreEventData{
		{BatteryID: "b-1", TestID: "memory-recall", Domain: "memory", RawScore: 21, ZScore: 0.6},
		{BatteryID: "b-1", TestID: "verbal-fluency", Domain: "language", RawScore: 17, ZScore: 0.0, TimeMs: 60000},
		{BatteryID: "b-2", TestID: "memory-recall", Domain: "memory", RawScore: 12, ZScore: -1.2},
	}
	for _, sc := range scores {
		if err := repo.AppendScore(ctx, sc); err != nil {
			t.Fatalf("append score: %v", err)
		}
	}

	got, err := repo.ScoresForBattery(ctx, "b-1")
	if err != nil {
		t.Fatalf("scores for battery: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(got))
	}
	if got[0].TestID != "memory-recall" || got[1].TestID != "verbal-fluency" {
		t.Errorf("order = [%s %s], want append order", got[0].TestID, got[1].TestID)
	}
	if got[1].TimeMs != 60000 {
		t.Errorf("time_ms = %d, want 60000", got[1].TimeMs)
	}
}

func TestAppendAnalysisAndLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnalysis(ctx, AnalysisEventData{
		BatteryID:        "b-1",
		RiskLevel:        "low",
		Confidence:       0.85,
		WordCount:        120,
		SentenceCount:    9,
		LexicalDiversity: 0.62,
		ClassifierName:   "llm",
	})
	if err != nil {
		t.Fatalf("append analysis: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:  "mock",
		Model:     "mock",
		Purpose:   "speech-analysis",
		Success:   true,
		LatencyMs: 12,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	analyses, err := s.Client().AnalysisEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count analyses: %v", err)
	}
	if analyses != 1 {
		t.Errorf("analyses = %d, want 1", analyses)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:            1,
			CompletedBatteries: 2,
			LastCCS:            -0.3,
			LastInterpretation: "mild",
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.CompletedBatteries != 2 {
		t.Errorf("completed_batteries = %d, want 2", snap.Data.CompletedBatteries)
	}
	if snap.Data.LastInterpretation != "mild" {
		t.Errorf("last_interpretation = %q, want mild", snap.Data.LastInterpretation)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
