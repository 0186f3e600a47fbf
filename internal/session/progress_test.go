package session

import (
	"testing"
	"time"

	"github.com/abhisek/neuroscreen/internal/composite"
	"github.com/abhisek/neuroscreen/internal/store"
)

func TestUpdateProgressFirstRun(t *testing.T) {
	cs := &composite.CompositeScore{CCS: 0.4, Interpretation: composite.Healthy}
	now := time.Now().UTC()

	data := UpdateProgress(nil, cs, now)
	if data.CompletedBatteries != 1 {
		t.Errorf("completed = %d, want 1", data.CompletedBatteries)
	}
	if data.LastCCS != 0.4 || data.LastInterpretation != "healthy" {
		t.Errorf("last = %v %q", data.LastCCS, data.LastInterpretation)
	}
	if len(data.Trend) != 1 {
		t.Fatalf("trend len = %d, want 1", len(data.Trend))
	}
}

func TestUpdateProgressAccumulates(t *testing.T) {
	now := time.Now().UTC()
	data := UpdateProgress(nil, &composite.CompositeScore{CCS: 0.4, Interpretation: composite.Healthy}, now)
	next := UpdateProgress(&data, &composite.CompositeScore{CCS: -0.6, Interpretation: composite.Mild}, now.Add(time.Hour))

	if next.CompletedBatteries != 2 {
		t.Errorf("completed = %d, want 2", next.CompletedBatteries)
	}
	if len(next.Trend) != 2 {
		t.Fatalf("trend len = %d, want 2", len(next.Trend))
	}
	if next.LastInterpretation != "mild" {
		t.Errorf("last interpretation = %q, want mild", next.LastInterpretation)
	}
	// Folding must not mutate the previous snapshot's trend.
	if len(data.Trend) != 1 {
		t.Errorf("previous trend mutated, len = %d", len(data.Trend))
	}
}

func TestUpdateProgressCapsTrend(t *testing.T) {
	var data store.SnapshotData
	now := time.Now().UTC()
	for i := 0; i < maxTrendPoints+10; i++ {
		data = UpdateProgress(&data, &composite.CompositeScore{CCS: 0, Interpretation: composite.Healthy}, now.Add(time.Duration(i)*time.Hour))
	}
	if len(data.Trend) != maxTrendPoints {
		t.Errorf("trend len = %d, want %d", len(data.Trend), maxTrendPoints)
	}
}

func TestTrending(t *testing.T) {
	mk := func(values ...float64) store.SnapshotData {
		var data store.SnapshotData
		for _, v := range values {
			data.Trend = append(data.Trend, store.TrendPoint{CCS: v})
		}
		return data
	}

	if got := Trending(mk(0.0)); got != 0 {
		t.Errorf("single point = %d, want 0", got)
	}
	if got := Trending(mk(-0.5, 0.2)); got != 1 {
		t.Errorf("improving = %d, want 1", got)
	}
	if got := Trending(mk(0.2, -0.5)); got != -1 {
		t.Errorf("declining = %d, want -1", got)
	}
	if got := Trending(mk(0.2, 0.25)); got != 0 {
		t.Errorf("stable = %d, want 0", got)
	}
}
