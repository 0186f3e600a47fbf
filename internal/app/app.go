package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/neuroscreen/internal/router"
	"github.com/abhisek/neuroscreen/internal/screen"
	"github.com/abhisek/neuroscreen/internal/screens/assessment"
	"github.com/abhisek/neuroscreen/internal/screens/home"
	"github.com/abhisek/neuroscreen/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps home.Deps) AppModel {
	return AppModel{
		router: router.New(home.New(deps)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that own Esc get the key; everyone else pops.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	stage := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StageProvider); ok {
			stage = sp.Stage()
		}
	}

	header := layout.RenderHeader(title, stage, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program with the given dependencies.
func Run(deps home.Deps) error {
	return run(newAppModel(deps))
}

// RunAssessment starts the program directly in a new battery run,
// with the home screen beneath it on the stack.
func RunAssessment(deps home.Deps) error {
	m := newAppModel(deps)
	m.initCmd = m.router.Push(assessment.New(deps.Norms, deps.EventRepo, deps.SnapRepo,
		deps.Analyzer, deps.Reporter, deps.Log))
	return run(m)
}

func run(m AppModel) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
