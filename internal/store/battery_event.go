package store

import (
	"context"
	"fmt"

	"github.com/abhisek/neuroscreen/ent"
	"github.com/abhisek/neuroscreen/ent/batteryevent"
)

func (r *eventRepo) AppendBattery(ctx context.Context, data BatteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BatteryEvent.Create().
		SetSequence(seqNum).
		SetBatteryID(data.BatteryID).
		SetAction(data.Action).
		SetCompletedTests(data.CompletedTests).
		SetDurationSecs(data.DurationSecs).
		SetCcs(data.CCS).
		SetInterpretation(data.Interpretation)

	if len(data.SkippedTests) > 0 {
		builder = builder.SetSkippedTests(data.SkippedTests)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save battery event: %w", err)
	}
	return nil
}

func (r *eventRepo) CompletedBatteries(ctx context.Context, opts QueryOpts) ([]BatteryRun, error) {
	q := r.client.BatteryEvent.Query().
		Where(batteryevent.Action("end")).
		Order(ent.Desc(batteryevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(batteryevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(batteryevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(batteryevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(batteryevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed batteries: %w", err)
	}

	runs := make([]BatteryRun, len(events))
	for i, e := range events {
		runs[i] = BatteryRun{
			BatteryID:      e.BatteryID,
			CompletedAt:    e.Timestamp,
			CompletedTests: e.CompletedTests,
			SkippedTests:   e.SkippedTests,
			DurationSecs:   e.DurationSecs,
			CCS:            e.Ccs,
			Interpretation: e.Interpretation,
		}
	}
	return runs, nil
}
