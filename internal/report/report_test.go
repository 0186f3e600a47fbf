package report

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/neuroscreen/internal/battery"
	"github.com/abhisek/neuroscreen/internal/composite"
	"github.com/abhisek/neuroscreen/internal/llm"
	"github.com/abhisek/neuroscreen/internal/textanalysis"
)

func testInput(band composite.Interpretation, ccs float64) Input {
	return Input{
		BatteryID: "b-1",
		Composite: &composite.CompositeScore{
			CCS:            ccs,
			Interpretation: band,
			IndividualScores: []composite.AssessmentScore{
				{TestID: battery.TestMemory, Domain: battery.DomainMemory, RawScore: 21, ZScore: 0.6},
				{TestID: battery.TestTrails, Domain: battery.DomainExecutive, RawScore: 95, ZScore: -0.8},
			},
		},
	}
}

func TestTemplateReportHealthy(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	r := svc.Generate(context.Background(), testInput(composite.Healthy, 0.4))

	if r.Source != "template" {
		t.Errorf("source = %q, want template", r.Source)
	}
	if !strings.Contains(r.Summary, "0.40") {
		t.Errorf("summary should mention the score, got %q", r.Summary)
	}
	if len(r.KeyFindings) < 2 {
		t.Fatalf("expected strongest and weakest findings, got %v", r.KeyFindings)
	}
	if !strings.Contains(r.KeyFindings[0], "Strongest") {
		t.Errorf("first finding = %q, want strongest area", r.KeyFindings[0])
	}
	if len(r.Recommendations) == 0 {
		t.Error("expected recommendations")
	}
}

func TestTemplateReportStrongRecommendsEvaluation(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	r := svc.Generate(context.Background(), testInput(composite.Strong, -2.1))

	found := false
	for _, rec := range r.Recommendations {
		if strings.Contains(rec, "evaluation") {
			found = true
		}
	}
	if !found {
		t.Errorf("strong band should recommend an evaluation, got %v", r.Recommendations)
	}
}

func TestTemplateReportNotesSkipped(t *testing.T) {
	input := testInput(composite.Mild, -0.5)
	input.Skipped = []string{"color-word"}

	svc := NewService(nil, DefaultConfig())
	r := svc.Generate(context.Background(), input)

	found := false
	for _, f := range r.KeyFindings {
		if strings.Contains(f, "skipped") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a skipped-tests finding, got %v", r.KeyFindings)
	}
}

func TestTemplateReportIncludesAnalysisRisk(t *testing.T) {
	input := testInput(composite.Mild, -0.5)
	input.Analysis = &textanalysis.Result{RiskLevel: textanalysis.RiskMedium, Confidence: 0.7}

	svc := NewService(nil, DefaultConfig())
	r := svc.Generate(context.Background(), input)

	found := false
	for _, f := range r.KeyFindings {
		if strings.Contains(f, "medium risk") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected speech risk finding, got %v", r.KeyFindings)
	}
}

func TestGenerateUsesLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"All good.","key_findings":["steady recall"],"recommendations":["keep active"]}`),
	})
	svc := NewService(mock, DefaultConfig())

	r := svc.Generate(context.Background(), testInput(composite.Healthy, 0.4))
	if r.Source != "llm" {
		t.Errorf("source = %q, want llm", r.Source)
	}
	if r.Summary != "All good." {
		t.Errorf("summary = %q", r.Summary)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestGenerateFallsBackOnLLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig())

	r := svc.Generate(context.Background(), testInput(composite.Healthy, 0.4))
	if r.Source != "template" {
		t.Errorf("source = %q, want template", r.Source)
	}
}

func TestRequestAndConsumeReport(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	if _, ok := svc.ConsumeReport(); ok {
		t.Fatal("expected no report before request")
	}

	svc.RequestReport(context.Background(), testInput(composite.Healthy, 0.4))

	deadline := time.Now().Add(2 * time.Second)
	for {
		if r, ok := svc.ConsumeReport(); ok {
			if r.Source != "template" {
				t.Errorf("source = %q, want template", r.Source)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for report")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, ok := svc.ConsumeReport(); ok {
		t.Error("expected pending slot to be cleared after consumption")
	}
}
