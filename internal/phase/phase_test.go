package phase

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func specs() []Spec {
	return []Spec{
		{ID: "intro"},
		{ID: "instructions"},
		{ID: "trial", Countdown: 60 * time.Second},
		{ID: "results"},
	}
}

func TestSequencer_ForwardOnly(t *testing.T) {
	s := NewSequencer(specs(), nil)

	if s.Current().ID != "intro" {
		t.Fatalf("initial phase = %s, want intro", s.Current().ID)
	}
	for _, want := range []ID{"instructions", "trial", "results"} {
		if !s.Next() {
			t.Fatalf("Next() = false before %s", want)
		}
		if s.Current().ID != want {
			t.Errorf("phase = %s, want %s", s.Current().ID, want)
		}
	}
	if s.Next() {
		t.Error("Next past final phase = true, want false")
	}
	if s.Current().ID != "results" {
		t.Errorf("phase after overrun = %s, want results", s.Current().ID)
	}
}

func TestSequencer_CountdownExpiry(t *testing.T) {
	var stops []ID
	var expiries []bool
	s := NewSequencer(specs(), func(id ID, expired bool) {
		stops = append(stops, id)
		expiries = append(expiries, expired)
	})
	s.Next()
	s.Next() // trial
	s.Start(t0)

	if s.Tick(t0.Add(59 * time.Second)) {
		t.Error("Tick before deadline fired")
	}
	if !s.Tick(t0.Add(60 * time.Second)) {
		t.Error("Tick at deadline did not fire")
	}
	if len(stops) != 1 || stops[0] != "trial" || !expiries[0] {
		t.Errorf("stop handler calls = %v (expired %v), want one expired trial stop", stops, expiries)
	}
}

func TestSequencer_StopIdempotentAgainstExpiry(t *testing.T) {
	calls := 0
	s := NewSequencer(specs(), func(ID, bool) { calls++ })
	s.Next()
	s.Next()
	s.Start(t0)

	// Manual stop and a late timer tick landing in the same update.
	s.Stop()
	s.Tick(t0.Add(2 * time.Minute))
	s.Stop()

	if calls != 1 {
		t.Errorf("stop handler ran %d times, want 1", calls)
	}
}

func TestSequencer_GenerationInvalidatesStaleTicks(t *testing.T) {
	s := NewSequencer(specs(), nil)
	s.Next()
	s.Next()
	s.Start(t0)

	gen := s.Generation()
	s.Stop()
	if s.Generation() == gen {
		t.Error("generation unchanged by Stop; stale ticks would fire")
	}
}

func TestSequencer_Remaining(t *testing.T) {
	s := NewSequencer(specs(), nil)
	s.Next()
	s.Next()
	s.Start(t0)

	if got := s.Remaining(t0.Add(15 * time.Second)); got != 45*time.Second {
		t.Errorf("Remaining = %v, want 45s", got)
	}
	s.Stop()
	if got := s.Remaining(t0.Add(16 * time.Second)); got != 0 {
		t.Errorf("Remaining after stop = %v, want 0", got)
	}
}

func TestSequencer_UntimedPhaseNeverExpires(t *testing.T) {
	s := NewSequencer(specs(), nil)
	s.Start(t0) // intro, no countdown

	if s.Tick(t0.Add(24 * time.Hour)) {
		t.Error("untimed phase expired")
	}
}

func TestSequencer_NextStopsRunningPhase(t *testing.T) {
	calls := 0
	s := NewSequencer(specs(), func(ID, bool) { calls++ })
	s.Next()
	s.Next()
	s.Start(t0)

	s.Next()
	if calls != 1 {
		t.Errorf("advancing past a running phase fired handler %d times, want 1", calls)
	}
}

func TestSequencer_RestartSkipsStopHandler(t *testing.T) {
	calls := 0
	s := NewSequencer(specs(), func(ID, bool) { calls++ })
	s.Next()
	s.Next()
	s.Start(t0)

	s.Restart()
	if calls != 0 {
		t.Errorf("Restart fired stop handler %d times, want 0 (run is discarded)", calls)
	}
	if s.Current().ID != "intro" {
		t.Errorf("phase after Restart = %s, want intro", s.Current().ID)
	}
	if s.Tick(t0.Add(2 * time.Minute)) {
		t.Error("stale countdown survived Restart")
	}
}

func TestSequencer_Done(t *testing.T) {
	s := NewSequencer([]Spec{{ID: "only"}}, nil)
	if s.Done() {
		t.Error("Done before stop")
	}
	s.Start(t0)
	s.Stop()
	if !s.Done() {
		t.Error("not Done after final phase stopped")
	}
}
