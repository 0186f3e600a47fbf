package textanalysis

import "github.com/abhisek/neuroscreen/internal/llm"

// AnalysisSchema defines the JSON schema for LLM speech analysis responses.
var AnalysisSchema = &llm.Schema{
	Name:        "speech-analysis",
	Description: "Screening of a transcribed speech sample for linguistic markers of cognitive decline",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"risk_level": map[string]any{
				"type":        "string",
				"enum":        []any{"low", "medium", "high"},
				"description": "Overall risk indicated by the language patterns in the sample",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence score (0.0-1.0) in the risk assessment",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Brief one-sentence explanation of the key linguistic findings",
			},
		},
		"required":             []any{"risk_level", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}
