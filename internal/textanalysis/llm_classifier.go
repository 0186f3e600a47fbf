package textanalysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/neuroscreen/internal/llm"
)

// ClassifierConfig holds configuration for the LLM classifier.
type ClassifierConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultClassifierConfig returns sensible defaults.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Classifier performs LLM-based speech sample screening.
type Classifier struct {
	provider llm.Provider
	cfg      ClassifierConfig
}

// NewClassifier creates an LLM-based classifier.
func NewClassifier(provider llm.Provider, cfg ClassifierConfig) *Classifier {
	return &Classifier{provider: provider, cfg: cfg}
}

// analysisOutput is the raw LLM response.
type analysisOutput struct {
	RiskLevel  string  `json:"risk_level"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Classify sends a speech sample to the LLM for risk screening.
func (c *Classifier) Classify(ctx context.Context, text string, features LinguisticFeatures) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "speech-analysis")

	userMsg, err := buildAnalysisMessage(text, features)
	if err != nil {
		return nil, fmt.Errorf("build analysis prompt: %w", err)
	}

	llmReq := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM speech analysis failed: %w", err)
	}

	var raw analysisOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if raw.Confidence < 0 || raw.Confidence > 1 {
		return nil, fmt.Errorf("confidence %v outside [0,1]", raw.Confidence)
	}

	risk := RiskLevel(raw.RiskLevel)
	switch risk {
	case RiskLow, RiskMedium, RiskHigh:
	default:
		return nil, fmt.Errorf("unknown risk level %q", raw.RiskLevel)
	}

	return &Result{
		RiskLevel:      risk,
		Confidence:     raw.Confidence,
		Features:       features,
		ClassifierName: "llm",
		Reasoning:      raw.Reasoning,
	}, nil
}

const analysisSystemPrompt = `You are a speech-language screening assistant. You are given a transcribed speech sample in which a participant describes a picture, along with surface statistics of the sample. Assess whether the language patterns suggest cognitive decline.

Instructions:
- Consider semantic fluency, syntactic complexity, word-finding difficulty, and repetitiveness.
- Return risk_level "low" when language production appears typical, "high" when patterns strongly suggest decline, and "medium" otherwise.
- Provide a confidence score (0.0-1.0) for the assessment.
- Keep reasoning to one sentence.
- This is a screening signal, not a diagnosis.`

var analysisUserTemplate = template.Must(template.New("analysis").Parse(`Transcribed sample:
{{.Text}}

Surface statistics:
- Words: {{.Features.WordCount}}
- Sentences: {{.Features.SentenceCount}}
- Avg words per sentence: {{.Features.AvgWordsPerSentence}}
- Lexical diversity: {{.Features.LexicalDiversity}}`))

func buildAnalysisMessage(text string, features LinguisticFeatures) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Text     string
		Features LinguisticFeatures
	}{Text: text, Features: features}
	if err := analysisUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
