package session

import (
	"time"

	"github.com/abhisek/neuroscreen/internal/composite"
	"github.com/abhisek/neuroscreen/internal/store"
)

// maxTrendPoints caps the trend history carried in snapshots.
const maxTrendPoints = 50

// UpdateProgress folds a finished run into the progress snapshot data.
// prev may be nil for the first run.
func UpdateProgress(prev *store.SnapshotData, cs *composite.CompositeScore, completedAt time.Time) store.SnapshotData {
	var data store.SnapshotData
	if prev != nil {
		data = *prev
		data.Trend = make([]store.TrendPoint, len(prev.Trend))
		copy(data.Trend, prev.Trend)
	}

	data.Version = 1
	data.CompletedBatteries++
	data.LastCCS = cs.CCS
	data.LastInterpretation = string(cs.Interpretation)
	data.Trend = append(data.Trend, store.TrendPoint{
		Timestamp:      completedAt,
		CCS:            cs.CCS,
		Interpretation: string(cs.Interpretation),
	})
	if len(data.Trend) > maxTrendPoints {
		data.Trend = data.Trend[len(data.Trend)-maxTrendPoints:]
	}

	return data
}

// Trending reports the direction of the composite across the last two
// observations: +1 improving, -1 declining, 0 stable or unknown.
func Trending(data store.SnapshotData) int {
	n := len(data.Trend)
	if n < 2 {
		return 0
	}
	delta := data.Trend[n-1].CCS - data.Trend[n-2].CCS
	const stable = 0.1
	switch {
	case delta > stable:
		return 1
	case delta < -stable:
		return -1
	default:
		return 0
	}
}
