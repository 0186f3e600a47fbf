package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/neuroscreen/internal/norms"
	"github.com/abhisek/neuroscreen/internal/report"
	"github.com/abhisek/neuroscreen/internal/router"
	"github.com/abhisek/neuroscreen/internal/screen"
	"github.com/abhisek/neuroscreen/internal/screens/assessment"
	"github.com/abhisek/neuroscreen/internal/screens/history"
	sess "github.com/abhisek/neuroscreen/internal/session"
	"github.com/abhisek/neuroscreen/internal/store"
	"github.com/abhisek/neuroscreen/internal/textanalysis"
	"github.com/abhisek/neuroscreen/internal/ui/components"
	"github.com/abhisek/neuroscreen/internal/ui/theme"
)

// Deps carries everything the home screen wires into the screens it
// launches. Repos and services may be nil; the battery still runs
// without persistence or a language model.
type Deps struct {
	Norms     norms.Table
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	Analyzer  *textanalysis.Service
	Reporter  *report.Service
	Log       *zap.Logger
}

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	menu components.Menu
	deps Deps

	completed int
	lastCCS   float64
	lastBand  string
	trend     int
	hasRuns   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	h := &HomeScreen{deps: deps}
	h.loadProgress()

	items := []components.MenuItem{
		{Label: "Start Battery", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessment.New(deps.Norms, deps.EventRepo, deps.SnapRepo,
						deps.Analyzer, deps.Reporter, deps.Log),
				}
			}
		}},
		{Label: "History", Disabled: deps.EventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.EventRepo)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// loadProgress reads the latest snapshot for the stats panel.
func (h *HomeScreen) loadProgress() {
	if h.deps.SnapRepo == nil {
		return
	}
	snap, err := h.deps.SnapRepo.Latest(context.Background())
	if err != nil || snap == nil {
		return
	}
	h.completed = snap.Data.CompletedBatteries
	h.lastCCS = snap.Data.LastCCS
	h.lastBand = snap.Data.LastInterpretation
	h.trend = sess.Trending(snap.Data)
	h.hasRuns = snap.Data.CompletedBatteries > 0
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("NeuroScreen")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Cognitive screening battery")
	sections = append(sections, title+"\n"+subtitle)

	if h.hasRuns {
		sections = append(sections, h.renderStats())
	}

	sections = append(sections, h.menu.View())

	disclaimer := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(min(width-8, 64)).
		Render("Screening only. Results are not a diagnosis; discuss any concerns with a healthcare professional.")
	sections = append(sections, disclaimer)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	trendStr := "steady"
	trendColor := theme.TextDim
	switch h.trend {
	case 1:
		trendStr = "improving"
		trendColor = theme.Success
	case -1:
		trendStr = "declining"
		trendColor = theme.Error
	}

	stats := fmt.Sprintf("Batteries: %d    Last CCS: %+.2f (%s)    Trend: ",
		h.completed, h.lastCCS, h.lastBand)

	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(stats) +
		lipgloss.NewStyle().Foreground(trendColor).Render(trendStr)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
