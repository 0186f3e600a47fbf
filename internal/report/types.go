// Package report turns a scored battery into a readable screening
// report with interpretation and recommendations.
package report

import (
	"time"

	"github.com/abhisek/neuroscreen/internal/composite"
	"github.com/abhisek/neuroscreen/internal/textanalysis"
)

// Report is the rendered screening report for one battery run.
type Report struct {
	BatteryID       string
	Summary         string
	KeyFindings     []string
	Recommendations []string
	Source          string // "llm" or "template"
	GeneratedAt     time.Time
}

// Input holds everything the generator needs for one battery.
type Input struct {
	BatteryID string
	Composite *composite.CompositeScore
	Analysis  *textanalysis.Result // nil when the speech test was skipped
	Skipped   []string
}

// Config holds report generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for report generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.5,
	}
}
