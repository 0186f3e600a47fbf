package store

import (
	"context"
	"fmt"

	"github.com/abhisek/neuroscreen/ent"
	"github.com/abhisek/neuroscreen/ent/scoreevent"
)

func (r *eventRepo) AppendScore(ctx context.Context, data ScoreEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ScoreEvent.Create().
		SetSequence(seqNum).
		SetBatteryID(data.BatteryID).
		SetTestID(data.TestID).
		SetDomain(data.Domain).
		SetRawScore(data.RawScore).
		SetZScore(data.ZScore).
		SetTimeMs(data.TimeMs).
		SetErrorCount(data.ErrorCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save score event: %w", err)
	}
	return nil
}

func (r *eventRepo) ScoresForBattery(ctx context.Context, batteryID string) ([]ScoreRecord, error) {
	events, err := r.client.ScoreEvent.Query().
		Where(scoreevent.BatteryID(batteryID)).
		Order(ent.Asc(scoreevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}

	records := make([]ScoreRecord, len(events))
	for i, e := range events {
		records[i] = ScoreRecord{
			TestID:     e.TestID,
			Domain:     e.Domain,
			RawScore:   e.RawScore,
			ZScore:     e.ZScore,
			TimeMs:     e.TimeMs,
			ErrorCount: e.ErrorCount,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}
