package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func analysisSchema() *Schema {
	return &Schema{
		Name:        "speech-analysis",
		Description: "Linguistic analysis of a speech sample",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"risk_level": map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
				"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"summary":    map[string]any{"type": "string"},
			},
			"required": []any{"risk_level", "confidence"},
		},
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"low","confidence":0.9,"summary":"fluent"}`)
	if err := validateResponse(analysisSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"medium","confidence":0.5}`)
	if err := validateResponse(analysisSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"low"}`)
	err := validateResponse(analysisSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"low","confidence":"high"}`)
	err := validateResponse(analysisSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseInvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"catastrophic","confidence":0.9}`)
	err := validateResponse(analysisSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"risk_level":"high","confidence":1.4}`)
	if err := validateResponse(analysisSchema(), raw); err == nil {
		t.Fatal("expected error for out-of-range confidence")
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(analysisSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseEmpty(t *testing.T) {
	if err := validateResponse(analysisSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponseNested(t *testing.T) {
	schema := &Schema{
		Name:        "battery-report",
		Description: "Nested report payload",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"interpretation": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"band": map[string]any{"type": "string"},
					},
					"required": []any{"band"},
				},
				"recommendations": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"interpretation", "recommendations"},
		},
	}

	valid := json.RawMessage(`{"interpretation":{"band":"healthy"},"recommendations":["stay active"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"interpretation":{"band":"healthy"},"recommendations":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
