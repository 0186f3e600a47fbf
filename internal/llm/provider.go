// Package llm abstracts the language-model providers used for
// transcript classification and report drafting. Consumers send a
// Request and receive validated structured JSON; which vendor serves it
// is a configuration detail.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction consumers depend on.
type Provider interface {
	// Generate sends a prompt and returns a structured response. When
	// the request carries a Schema, the returned Content is JSON
	// validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Single-turn calls (the only kind
	// this app makes) carry one user message.
	Messages []Message

	// Schema, when set, requests native structured output conforming
	// to the definition. When nil, Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema to the provider (kebab-case).
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
