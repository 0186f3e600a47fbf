package assessment

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/neuroscreen/internal/battery"
	"github.com/abhisek/neuroscreen/internal/stroop"
	"github.com/abhisek/neuroscreen/internal/trails"
	"github.com/abhisek/neuroscreen/internal/ui/components"
	"github.com/abhisek/neuroscreen/internal/ui/theme"
)

// inkColors maps palette names to terminal colors for the color-word
// test.
var inkColors = map[stroop.Color]color.Color{
	"red":    lipgloss.Color("#EF4444"),
	"blue":   lipgloss.Color("#3B82F6"),
	"green":  lipgloss.Color("#22C55E"),
	"yellow": lipgloss.Color("#EAB308"),
	"orange": lipgloss.Color("#F97316"),
	"purple": lipgloss.Color("#A855F7"),
}

func (s *AssessmentScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.finishing {
		return centerDim(width, "\n\n\n  Saving results...")
	}
	if s.analyzing {
		return centerDim(width, "\n\n\n  Analyzing your description...")
	}

	var b strings.Builder
	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	switch s.seq.Current().ID {
	case phaseIntro:
		b.WriteString(s.renderIntro(width))
	case phaseMemorize:
		b.WriteString(s.renderMemorize(width))
	case phaseImmediate, phaseDelayed:
		b.WriteString(s.renderRecall(width))
	case phaseDistract:
		b.WriteString(s.renderDistraction(width))
	case phaseSemantic, phasePhonemic:
		b.WriteString(s.renderFluency(width))
	case phasePartA, phasePartB:
		b.WriteString(s.renderTrails(width))
	case phasePractice, phaseScored:
		b.WriteString(s.renderStroop(width))
	case phaseDescribe:
		b.WriteString(s.renderDescribe(width))
	}

	return b.String()
}

func (s *AssessmentScreen) renderStatusLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.test.Name))

	right := ""
	if remaining := s.seq.Remaining(time.Now()); remaining > 0 {
		mins := int(remaining.Minutes())
		secs := int(remaining.Seconds()) % 60
		label := fmt.Sprintf("%d:%02d", mins, secs)
		pct := float64(remaining) / float64(s.seq.Current().Countdown)
		right = components.NewProgressBar(label, pct, false, 24).View()
	}

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *AssessmentScreen) renderIntro(width int) string {
	var text string
	switch s.test.ID {
	case battery.TestMemory:
		text = "You will see a list of words to memorize.\n" +
			"Afterwards, type every word you remember.\n" +
			"A short arithmetic task follows, then you recall the words again."
	case battery.TestFluency:
		text = "Name as many items as you can from a given category.\n" +
			"Type one word at a time and press Enter after each.\n" +
			"Two rounds of 60 seconds."
	case battery.TestTrails:
		text = "Connect the circles in order as fast as you can.\n" +
			"Part A: numbers 1 to 25. Part B: alternate numbers and letters (1-A-2-B...).\n" +
			"Move with the arrow keys, press Enter to connect."
	case battery.TestStroop:
		text = "A color word appears printed in some ink color.\n" +
			"Press the number of the INK color, not the word itself.\n" +
			"A few practice rounds first, then the scored trials."
	case battery.TestPicture:
		text = "Imagine a busy kitchen scene: a woman washes dishes while the sink\n" +
			"overflows, and two children reach for a cookie jar on a high shelf.\n" +
			"Describe everything happening in as much detail as you can."
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(text))
	b.WriteString("\n\n")
	b.WriteString(centerDim(width, "Press Enter to begin, or S to skip this test."))
	return b.String()
}

func (s *AssessmentScreen) renderMemorize(width int) string {
	var b strings.Builder
	b.WriteString(centerDim(width, "Memorize these words:"))
	b.WriteString("\n\n")

	wordStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	var words []string
	for _, w := range s.trial.List {
		words = append(words, wordStyle.Render(w))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(words, "   ")))
	b.WriteString("\n\n")
	b.WriteString(centerDim(width, "Press Enter when you are ready."))
	return b.String()
}

func (s *AssessmentScreen) renderRecall(width int) string {
	prompt := "Type the words you remember, one per line."
	if s.seq.Current().ID == phaseDelayed {
		prompt = "Type the words from the earlier list that you still remember."
	}

	var b strings.Builder
	b.WriteString(centerDim(width, prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")
	b.WriteString(centerDim(width,
		fmt.Sprintf("%d recorded. Enter on an empty line finishes.", len(s.recalled))))
	return b.String()
}

func (s *AssessmentScreen) renderDistraction(width int) string {
	var b strings.Builder
	b.WriteString(centerDim(width, "Quick arithmetic while you wait:"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d − %d = ?", s.distractA, s.distractB)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")
	b.WriteString(centerDim(width,
		fmt.Sprintf("Solved: %d of %d", s.trial.DistractionCorrect, s.trial.DistractionTotal)))
	return b.String()
}

func (s *AssessmentScreen) renderFluency(width int) string {
	prompt := "Name as many ANIMALS as you can."
	if s.seq.Current().ID == phasePhonemic {
		prompt = "Name as many words STARTING WITH F as you can."
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render(prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")
	b.WriteString(centerDim(width,
		fmt.Sprintf("%d words so far. Enter after each word.", len(s.flWords))))
	return b.String()
}

func (s *AssessmentScreen) renderTrails(width int) string {
	part := "Part A: 1 → 2 → 3 → ..."
	if s.seq.Current().ID == phasePartB {
		part = "Part B: 1 → A → 2 → B → ..."
	}

	var b strings.Builder
	b.WriteString(centerDim(width, part))
	b.WriteString("\n")
	b.WriteString(centerDim(width, fmt.Sprintf("Next target: %s", s.validator.Target())))
	b.WriteString("\n\n")

	var grid strings.Builder
	for i, id := range s.trailNodes {
		node := findNode(s.validator, id)

		cell := fmt.Sprintf(" (%s) ", id)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case node != nil && node.Connected:
			style = style.Foreground(theme.TextDim)
		case node != nil && node.FlaggedError:
			style = style.Foreground(theme.Error).Bold(true)
		}
		if i == s.cursor {
			style = style.Background(theme.BgCard).Bold(true).Foreground(theme.Primary)
		}

		grid.WriteString(style.Render(cell))
		if (i+1)%trailsColumns == 0 {
			grid.WriteString("\n\n")
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grid.String()))
	b.WriteString("\n")
	b.WriteString(centerDim(width,
		fmt.Sprintf("Errors: %d", s.validator.Result().ErrorCount)))
	return b.String()
}

func (s *AssessmentScreen) renderStroop(width int) string {
	label := "Scored trial"
	limit := scoredTrials
	if s.seq.Current().ID == phasePractice {
		label = "Practice"
		limit = practiceTrials
	}

	var b strings.Builder
	b.WriteString(centerDim(width, fmt.Sprintf("%s %d of %d", label, s.trialIdx+1, limit)))
	b.WriteString("\n\n")

	ink := inkColors[s.stimulus.InkColor]
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(ink).Bold(true).
		Render(strings.ToUpper(string(s.stimulus.DisplayedWord))))
	b.WriteString("\n\n")

	var options []string
	for i, c := range stroop.Palette {
		options = append(options, lipgloss.NewStyle().
			Foreground(inkColors[c]).
			Render(fmt.Sprintf("%d:%s", i+1, c)))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(options, "   ")))

	if s.lastCorrect != nil && s.seq.Current().ID == phasePractice {
		b.WriteString("\n\n")
		if *s.lastCorrect {
			b.WriteString(lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).
				Foreground(theme.Success).Render("Correct"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).
				Foreground(theme.Error).Render("Remember: the ink color"))
		}
	}
	return b.String()
}

func (s *AssessmentScreen) renderDescribe(width int) string {
	var b strings.Builder
	b.WriteString(centerDim(width, "Describe the kitchen scene. Enter adds a line; an empty line finishes."))
	b.WriteString("\n\n")

	if len(s.descLines) > 0 {
		text := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(strings.Join(s.descLines, " "))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render("End the battery early?"))
	b.WriteString("\n")
	b.WriteString(centerDim(width, "Completed tests are kept; the rest are marked skipped."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end battery"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func centerDim(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(text)
}

func findNode(v *trails.Validator, id string) *trails.Node {
	for _, n := range v.Nodes() {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
