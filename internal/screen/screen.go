package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/neuroscreen/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StageProvider is an optional interface for screens that label the
// header with their progress (e.g. "Test 2 of 5").
type StageProvider interface {
	Stage() string
}

// EscHandler is an optional interface for screens that own the Esc
// key, e.g. to confirm before abandoning collected data.
type EscHandler interface {
	HandlesEsc() bool
}
