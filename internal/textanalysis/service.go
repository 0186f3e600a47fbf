package textanalysis

import (
	"context"
	"strings"

	"github.com/abhisek/neuroscreen/internal/llm"
)

// Service screens speech samples, preferring the LLM classifier and
// falling back to surface-statistic heuristics.
type Service struct {
	classifier *Classifier
}

// NewService creates an analysis service. If provider is nil, only the
// heuristic classifier is available.
func NewService(provider llm.Provider) *Service {
	s := &Service{}
	if provider != nil {
		s.classifier = NewClassifier(provider, DefaultClassifierConfig())
	}
	return s
}

// Analyze screens one speech sample. The LLM result wins when
// available; classifier failures degrade to the heuristic rather than
// failing the battery.
func (s *Service) Analyze(ctx context.Context, text string) (*Result, error) {
	if len(strings.TrimSpace(text)) < minSampleChars {
		return nil, ErrSampleTooShort
	}

	features := ExtractFeatures(text)

	if s.classifier != nil {
		result, err := s.classifier.Classify(ctx, text, features)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return heuristicClassify(features), nil
}

// RawScore maps an analysis result onto the scale the normalization
// table expects for the picture description test. Risk bands anchor
// the score and confidence pulls it away from the population mean, so
// an unconfident assessment stays near zero after normalization.
func RawScore(r *Result) float64 {
	var anchor float64
	switch r.RiskLevel {
	case RiskLow:
		anchor = 80
	case RiskMedium:
		anchor = 55
	default:
		anchor = 30
	}
	const mean = 60
	return mean + (anchor-mean)*r.Confidence
}
