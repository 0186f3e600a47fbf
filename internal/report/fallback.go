package report

import (
	"fmt"
	"time"

	"github.com/abhisek/neuroscreen/internal/battery"
	"github.com/abhisek/neuroscreen/internal/composite"
	"github.com/abhisek/neuroscreen/internal/textanalysis"
)

// templateReport renders a deterministic report without an LLM.
func templateReport(input Input) *Report {
	r := &Report{
		BatteryID:   input.BatteryID,
		Source:      "template",
		GeneratedAt: time.Now().UTC(),
	}

	switch input.Composite.Interpretation {
	case composite.Healthy:
		r.Summary = fmt.Sprintf(
			"Your composite score of %.2f falls within the typical range. "+
				"Performance across the battery is consistent with healthy cognitive function for the reference population. "+
				"This is a screening result, not a clinical assessment.",
			input.Composite.CCS)
		r.Recommendations = []string{
			"Maintain regular physical activity and sleep habits that support brain health",
			"Re-screen periodically as part of routine health monitoring",
		}
	case composite.Mild:
		r.Summary = fmt.Sprintf(
			"Your composite score of %.2f is somewhat below the typical range. "+
				"This pattern can reflect many things, including fatigue or distraction, and does not by itself indicate decline. "+
				"This is a screening result, not a clinical assessment.",
			input.Composite.CCS)
		r.Recommendations = []string{
			"Repeat the screening in a few weeks under rested conditions",
			"Track results over time and watch for a downward trend",
			"Discuss persistent concerns with a healthcare provider",
		}
	default:
		r.Summary = fmt.Sprintf(
			"Your composite score of %.2f is well below the typical range. "+
				"Scores in this band warrant follow-up with a professional who can run a comprehensive evaluation. "+
				"This is a screening result, not a clinical assessment.",
			input.Composite.CCS)
		r.Recommendations = []string{
			"Arrange a comprehensive neuropsychological evaluation",
			"Bring these screening results to the appointment",
		}
	}

	r.KeyFindings = templateFindings(input)

	if len(input.Skipped) > 0 {
		r.KeyFindings = append(r.KeyFindings,
			fmt.Sprintf("%d test(s) were skipped, which lowers the reliability of the composite", len(input.Skipped)))
	}

	return r
}

// templateFindings names the strongest and weakest tests by z-score.
func templateFindings(input Input) []string {
	scores := input.Composite.IndividualScores
	if len(scores) == 0 {
		return []string{"No individual test scores were recorded"}
	}

	best, worst := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s.ZScore > best.ZScore {
			best = s
		}
		if s.ZScore < worst.ZScore {
			worst = s
		}
	}

	findings := []string{
		fmt.Sprintf("Strongest area: %s (z %.2f)", testName(best.TestID), best.ZScore),
	}
	if worst.TestID != best.TestID {
		findings = append(findings,
			fmt.Sprintf("Weakest area: %s (z %.2f)", testName(worst.TestID), worst.ZScore))
	}

	if input.Analysis != nil && input.Analysis.RiskLevel != textanalysis.RiskLow {
		findings = append(findings,
			fmt.Sprintf("Speech sample screening indicated %s risk", input.Analysis.RiskLevel))
	}

	return findings
}

func testName(id battery.TestID) string {
	if def, ok := battery.Get(id); ok {
		return def.Name
	}
	return string(id)
}
