package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnalysis(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnalysisEvent.Create().
		SetSequence(seqNum).
		SetBatteryID(data.BatteryID).
		SetRiskLevel(data.RiskLevel).
		SetConfidence(data.Confidence).
		SetWordCount(data.WordCount).
		SetSentenceCount(data.SentenceCount).
		SetLexicalDiversity(data.LexicalDiversity).
		SetClassifierName(data.ClassifierName).
		SetReasoning(data.Reasoning).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}
