package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/neuroscreen/internal/battery"
)

const reportSystemPrompt = `You are writing the results section of a cognitive screening report for a layperson. The participant completed a brief self-administered battery. Write plainly and calmly, avoid jargon, and never present the results as a diagnosis.`

func buildReportUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Composite score: %.2f (band: %s)\n", input.Composite.CCS, input.Composite.Interpretation))

	b.WriteString("\nPer-test scores (z-scores, 0 = population average):\n")
	for _, s := range input.Composite.IndividualScores {
		name := string(s.TestID)
		if def, ok := battery.Get(s.TestID); ok {
			name = def.Name
		}
		b.WriteString(fmt.Sprintf("- %s: raw %.1f, z %.2f\n", name, s.RawScore, s.ZScore))
	}

	if len(input.Composite.DomainBreakdown) > 0 {
		b.WriteString("\nDomain averages:\n")
		for domain, z := range input.Composite.DomainBreakdown {
			b.WriteString(fmt.Sprintf("- %s: %.2f\n", domain, z))
		}
	}

	if input.Analysis != nil {
		b.WriteString(fmt.Sprintf("\nSpeech sample screening: risk %s (confidence %.0f%%)\n",
			input.Analysis.RiskLevel, input.Analysis.Confidence*100))
		if input.Analysis.Reasoning != "" {
			b.WriteString(fmt.Sprintf("Finding: %s\n", input.Analysis.Reasoning))
		}
	}

	if len(input.Skipped) > 0 {
		b.WriteString(fmt.Sprintf("\nSkipped tests: %s\n", strings.Join(input.Skipped, ", ")))
	}

	b.WriteString(`
Instructions:
1. Write a 3-5 sentence summary of what the results suggest overall.
2. List 2-4 key findings, naming the strongest and weakest areas.
3. List 2-4 recommendations. For the "strong" band always recommend a professional evaluation; for "mild" recommend monitoring and re-screening; for "healthy" recommend routine cognitive health habits.
4. Mention that skipped tests reduce the reliability of the composite, if any were skipped.
5. Remind the reader this is a screening tool, not a clinical assessment.`)

	return b.String()
}
