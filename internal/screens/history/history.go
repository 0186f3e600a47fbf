package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/neuroscreen/internal/battery"
	"github.com/abhisek/neuroscreen/internal/router"
	"github.com/abhisek/neuroscreen/internal/screen"
	"github.com/abhisek/neuroscreen/internal/store"
	"github.com/abhisek/neuroscreen/internal/ui/layout"
	"github.com/abhisek/neuroscreen/internal/ui/theme"
)

type historyLoadedMsg struct {
	Batteries []store.BatteryRun
	Scores    map[string][]store.ScoreRecord // batteryID → per-test scores
	Err       error
}

// HistoryScreen lists past batteries with expandable per-test detail.
type HistoryScreen struct {
	eventRepo store.EventRepo
	batteries []store.BatteryRun
	scores    map[string][]store.ScoreRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		batteries, err := s.eventRepo.CompletedBatteries(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		scores := make(map[string][]store.ScoreRecord)
		for _, b := range batteries {
			recs, err := s.eventRepo.ScoresForBattery(ctx, b.BatteryID)
			if err != nil {
				continue
			}
			scores[b.BatteryID] = recs
		}

		return historyLoadedMsg{Batteries: batteries, Scores: scores}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.batteries = msg.Batteries
			s.scores = msg.Scores
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.batteries)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.batteries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No batteries yet. Run your first assessment!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.batteries {
		dateStr := run.CompletedAt.Format("Jan 02, 2006")
		mins := run.DurationSecs / 60
		secs := run.DurationSecs % 60

		skippedStr := ""
		if n := len(run.SkippedTests); n > 0 {
			skippedStr = fmt.Sprintf("  %d skipped", n)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d:%02d  %d tests  CCS %+.2f  %s%s",
			prefix, dateStr, mins, secs, run.CompletedTests,
			run.CCS, run.Interpretation, skippedStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		} else {
			style = style.Foreground(interpretationColor(run.Interpretation))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Expanded per-test scores.
		if s.expanded[i] {
			recs := s.scores[run.BatteryID]
			if len(recs) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No recorded scores")))
				b.WriteString("\n")
			}
			for _, rec := range recs {
				name := rec.TestID
				if def, ok := battery.Get(battery.TestID(rec.TestID)); ok {
					name = def.Name
				}
				detail := fmt.Sprintf("    %-26s raw %7.1f  z %+.2f  errors %d",
					name, rec.RawScore, rec.ZScore, rec.ErrorCount)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func interpretationColor(interpretation string) color.Color {
	switch interpretation {
	case "healthy":
		return theme.Success
	case "mild":
		return theme.Accent
	case "strong":
		return theme.Error
	default:
		return theme.Text
	}
}
