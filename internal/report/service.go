package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/neuroscreen/internal/llm"
)

// Service generates screening reports, asynchronously for the TUI.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Report
	ready   bool
}

// NewService creates a report service. If provider is nil, only
// template reports are produced.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces a report synchronously. LLM failures degrade to
// the template report rather than failing.
func (s *Service) Generate(ctx context.Context, input Input) *Report {
	if s.provider == nil {
		return templateReport(input)
	}
	r, err := s.generateLLM(ctx, input)
	if err != nil {
		return templateReport(input)
	}
	return r
}

// RequestReport starts async report generation. Only one report is
// in-flight at a time; new requests replace pending ones.
func (s *Service) RequestReport(ctx context.Context, input Input) {
	go func() {
		r := s.Generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = r
		s.ready = true
	}()
}

// ConsumeReport returns the pending report if one is ready. After
// consumption the pending slot is cleared.
func (s *Service) ConsumeReport() (*Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	r := s.pending
	s.pending = nil
	s.ready = false
	return r, r != nil
}

type reportOutput struct {
	Summary         string   `json:"summary"`
	KeyFindings     []string `json:"key_findings"`
	Recommendations []string `json:"recommendations"`
}

func (s *Service) generateLLM(ctx context.Context, input Input) (*Report, error) {
	ctx = llm.WithPurpose(ctx, "report")

	req := llm.Request{
		System: reportSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReportUserMessage(input)},
		},
		Schema:      ReportSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("report generation: %w", err)
	}

	var out reportOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse report response: %w", err)
	}

	return &Report{
		BatteryID:       input.BatteryID,
		Summary:         out.Summary,
		KeyFindings:     out.KeyFindings,
		Recommendations: out.Recommendations,
		Source:          "llm",
		GeneratedAt:     time.Now().UTC(),
	}, nil
}
