package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/neuroscreen/internal/battery"
	"github.com/abhisek/neuroscreen/internal/composite"
	"github.com/abhisek/neuroscreen/internal/session"
)

func testSummary() *session.RunSummary {
	completed := time.Now()
	return &session.RunSummary{
		BatteryID:      "battery-1",
		Duration:       18 * time.Minute,
		CompletedTests: 2,
		SkippedTests:   []string{"color-word"},
		Composite: &composite.CompositeScore{
			CCS:            0.42,
			Interpretation: composite.Healthy,
			IndividualScores: []composite.AssessmentScore{
				{TestID: battery.TestMemory, RawScore: 23, ZScore: 1.0, Domain: battery.DomainMemory, CompletedAt: completed},
				{TestID: battery.TestFluency, RawScore: 15, ZScore: -0.44, Domain: battery.DomainLanguage, CompletedAt: completed},
			},
			DomainBreakdown: map[battery.Domain]float64{
				battery.DomainMemory:   1.0,
				battery.DomainLanguage: -0.44,
			},
			CompletedAt: completed,
		},
	}
}

func TestSummaryScreenTitle(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreenDisplay(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Memory Recall") {
		t.Error("expected completed test name in view")
	}
	if !strings.Contains(view, "skipped") {
		t.Error("expected skipped test marker in view")
	}
	if !strings.Contains(view, "+0.42") {
		t.Error("expected composite score in view")
	}
}

func TestSummaryScreenNilReporterHasNoInitCmd(t *testing.T) {
	s := New(testSummary(), nil)
	if cmd := s.Init(); cmd != nil {
		t.Error("expected no poll command without a reporter")
	}
}

func TestSummaryScreenNavigationEnter(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreenNavigationEsc(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreenKeyHints(t *testing.T) {
	s := New(testSummary(), nil)
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
