package report

import "github.com/abhisek/neuroscreen/internal/llm"

// ReportSchema defines the JSON schema for LLM report responses.
var ReportSchema = &llm.Schema{
	Name:        "screening-report",
	Description: "Readable interpretation of a cognitive screening battery",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence plain-language summary of the results",
			},
			"key_findings": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 short bullet findings, strongest signals first",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 short next-step recommendations",
			},
		},
		"required":             []any{"summary", "key_findings", "recommendations"},
		"additionalProperties": false,
	},
}
