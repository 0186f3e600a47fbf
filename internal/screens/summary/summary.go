package summary

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neuroscreen/internal/battery"
	"github.com/abhisek/neuroscreen/internal/composite"
	"github.com/abhisek/neuroscreen/internal/report"
	"github.com/abhisek/neuroscreen/internal/router"
	"github.com/abhisek/neuroscreen/internal/screen"
	"github.com/abhisek/neuroscreen/internal/session"
	"github.com/abhisek/neuroscreen/internal/ui/components"
	"github.com/abhisek/neuroscreen/internal/ui/layout"
	"github.com/abhisek/neuroscreen/internal/ui/theme"
)

// reportPollMsg drives polling for the asynchronously generated
// report.
type reportPollMsg time.Time

// SummaryScreen displays the battery results and, once ready, the
// generated report.
type SummaryScreen struct {
	summary  *session.RunSummary
	reporter *report.Service
	report   *report.Report
	waiting  bool
	home     components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. reporter may be nil when no report was
// requested.
func New(summary *session.RunSummary, reporter *report.Service) *SummaryScreen {
	return &SummaryScreen{
		summary:  summary,
		reporter: reporter,
		waiting:  reporter != nil,
		home: components.NewButton("Return home", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.waiting {
		return pollCmd()
	}
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportPollMsg:
		if !s.waiting {
			return s, nil
		}
		if r, ok := s.reporter.ConsumeReport(); ok {
			s.report = r
			s.waiting = false
			return s, nil
		}
		return s, pollCmd()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		s.home, cmd = s.home.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil || sum.Composite == nil {
		return ""
	}
	cs := sum.Composite

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render("Battery complete"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d    Tests completed: %d", mins, secs, sum.CompletedTests)))
	b.WriteString("\n\n")

	// Composite line.
	ccsLine := fmt.Sprintf("Composite score: %+.2f    %s", cs.CCS, bandLabel(cs.Interpretation))
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(bandColor(cs.Interpretation)).Bold(true).
		Render(ccsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Tests")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Per-test results.
	for _, sc := range cs.IndividualScores {
		name := string(sc.TestID)
		if def, ok := battery.Get(sc.TestID); ok {
			name = def.Name
		}
		line := fmt.Sprintf("  %-26s raw %7.1f    z %+.2f", name, sc.RawScore, sc.ZScore)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if sc.ZScore < -1 {
			style = style.Foreground(theme.Error)
		} else if sc.ZScore > 0 {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	for _, id := range sum.SkippedTests {
		name := id
		if def, ok := battery.Get(battery.TestID(id)); ok {
			name = def.Name
		}
		line := fmt.Sprintf("  %-26s skipped", name)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(line)))
		b.WriteString("\n")
	}

	// Report section.
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Report")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	switch {
	case s.waiting:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).Italic(true).
			Render("Preparing your report..."))
		b.WriteString("\n")
	case s.report != nil:
		b.WriteString(s.renderReport(width))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.home.View()))
	b.WriteString("\n")

	return b.String()
}

func (s *SummaryScreen) renderReport(width int) string {
	r := s.report
	var b strings.Builder

	textWidth := min(width-8, 70)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text).Render(r.Summary)))
	b.WriteString("\n\n")

	for _, f := range r.KeyFindings {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text).
				Render("  • "+f)))
		b.WriteString("\n")
	}
	if len(r.Recommendations) > 0 {
		b.WriteString("\n")
		for _, rec := range r.Recommendations {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(textWidth).Foreground(theme.Secondary).
					Render("  ▸ "+rec)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func bandLabel(i composite.Interpretation) string {
	switch i {
	case composite.Healthy:
		return "within the healthy range"
	case composite.Mild:
		return "mild indicators present"
	case composite.Strong:
		return "strong indicators present"
	default:
		return string(i)
	}
}

func bandColor(i composite.Interpretation) color.Color {
	switch i {
	case composite.Healthy:
		return theme.Success
	case composite.Mild:
		return theme.Accent
	case composite.Strong:
		return theme.Error
	default:
		return theme.Text
	}
}

func pollCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return reportPollMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
