package textanalysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/neuroscreen/internal/llm"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	diff := a - b
	return diff < epsilon && diff > -epsilon
}

func TestExtractFeaturesBasic(t *testing.T) {
	f := ExtractFeatures("The cat sat on the mat. It was happy!")

	if f.WordCount != 9 {
		t.Errorf("WordCount = %d, want 9", f.WordCount)
	}
	if f.SentenceCount != 2 {
		t.Errorf("SentenceCount = %d, want 2", f.SentenceCount)
	}
	if !almostEqual(f.AvgWordsPerSentence, 4.5) {
		t.Errorf("AvgWordsPerSentence = %v, want 4.5", f.AvgWordsPerSentence)
	}
}

func TestExtractFeaturesLexicalDiversity(t *testing.T) {
	// 6 alpha tokens, 3 distinct after lowercasing.
	f := ExtractFeatures("dog dog Dog cat cat bird")
	if !almostEqual(f.LexicalDiversity, 0.5) {
		t.Errorf("LexicalDiversity = %v, want 0.5", f.LexicalDiversity)
	}
}

func TestExtractFeaturesTrailingSentence(t *testing.T) {
	f := ExtractFeatures("One sentence. And an unterminated one")
	if f.SentenceCount != 2 {
		t.Errorf("SentenceCount = %d, want 2", f.SentenceCount)
	}
}

func TestExtractFeaturesEllipsisIsOneTerminator(t *testing.T) {
	f := ExtractFeatures("Well... I think so.")
	if f.SentenceCount != 2 {
		t.Errorf("SentenceCount = %d, want 2", f.SentenceCount)
	}
}

func TestExtractFeaturesEmpty(t *testing.T) {
	f := ExtractFeatures("")
	if f.WordCount != 0 || f.SentenceCount != 0 {
		t.Errorf("expected zero features, got %+v", f)
	}
	if f.LexicalDiversity != 0 || f.AvgWordsPerSentence != 0 {
		t.Errorf("expected zero rates, got %+v", f)
	}
}

func TestAnalyzeRejectsShortSample(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Analyze(context.Background(), "short")
	if !errors.Is(err, ErrSampleTooShort) {
		t.Fatalf("expected ErrSampleTooShort, got %v", err)
	}
}

func TestAnalyzeHeuristicFallback(t *testing.T) {
	svc := NewService(nil)

	// Rich, varied sample: no markers fire.
	rich := "The boy is reaching for the cookie jar on the top shelf while his sister laughs quietly. " +
		"Meanwhile their mother washes dishes at the sink, unaware that water is overflowing onto the kitchen floor. " +
		"Outside the window a neighbor trims hedges under a bright summer sky, and a small dog watches everything with great interest."
	result, err := svc.Analyze(context.Background(), rich)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.ClassifierName != "heuristic" {
		t.Errorf("classifier = %q, want heuristic", result.ClassifierName)
	}
	if result.RiskLevel != RiskLow {
		t.Errorf("risk = %q, want low", result.RiskLevel)
	}

	// Short, repetitive sample: multiple markers fire.
	poor := "The boy. The boy. The jar. The boy."
	result, err = svc.Analyze(context.Background(), poor)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.RiskLevel != RiskHigh {
		t.Errorf("risk = %q, want high", result.RiskLevel)
	}
}

func TestAnalyzeUsesLLMResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"risk_level":"medium","confidence":0.7,"reasoning":"reduced syntactic complexity"}`),
	})
	svc := NewService(mock)

	sample := strings.Repeat("the boy reaches for the cookie jar ", 5)
	result, err := svc.Analyze(context.Background(), sample)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.ClassifierName != "llm" {
		t.Errorf("classifier = %q, want llm", result.ClassifierName)
	}
	if result.RiskLevel != RiskMedium {
		t.Errorf("risk = %q, want medium", result.RiskLevel)
	}
	if !almostEqual(result.Confidence, 0.7) {
		t.Errorf("confidence = %v, want 0.7", result.Confidence)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestAnalyzeFallsBackOnLLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock)

	sample := strings.Repeat("the boy reaches for the cookie jar ", 5)
	result, err := svc.Analyze(context.Background(), sample)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.ClassifierName != "heuristic" {
		t.Errorf("classifier = %q, want heuristic", result.ClassifierName)
	}
}

func TestClassifyRejectsBadConfidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"risk_level":"low","confidence":1.7,"reasoning":"x"}`),
	})
	c := NewClassifier(mock, DefaultClassifierConfig())

	_, err := c.Classify(context.Background(), "sample text here", LinguisticFeatures{})
	if err == nil {
		t.Fatal("expected error for out-of-range confidence")
	}
}

func TestClassifyRejectsUnknownRisk(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"risk_level":"severe","confidence":0.9,"reasoning":"x"}`),
	})
	c := NewClassifier(mock, DefaultClassifierConfig())

	_, err := c.Classify(context.Background(), "sample text here", LinguisticFeatures{})
	if err == nil {
		t.Fatal("expected error for unknown risk level")
	}
}

func TestRawScoreAnchors(t *testing.T) {
	tests := []struct {
		risk       RiskLevel
		confidence float64
		want       float64
	}{
		{RiskLow, 1.0, 80},
		{RiskMedium, 1.0, 55},
		{RiskHigh, 1.0, 30},
		{RiskHigh, 0.0, 60}, // no confidence, stay at the mean
		{RiskLow, 0.5, 70},
	}
	for _, tt := range tests {
		got := RawScore(&Result{RiskLevel: tt.risk, Confidence: tt.confidence})
		if !almostEqual(got, tt.want) {
			t.Errorf("RawScore(%s, %v) = %v, want %v", tt.risk, tt.confidence, got, tt.want)
		}
	}
}
