package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreEvent records the result of a single test within a battery.
type ScoreEvent struct {
	ent.Schema
}

func (ScoreEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScoreEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("battery_id").
			NotEmpty().
			Comment("Links to BatteryEvent"),
		field.String("test_id").
			NotEmpty().
			Comment("Which test produced this score"),
		field.String("domain").
			NotEmpty().
			Comment("Cognitive domain the test probes"),
		field.Float("raw_score").
			Comment("Raw score in the test's native unit"),
		field.Float("z_score").
			Comment("Normalized score in standard deviation units"),
		field.Int64("time_ms").
			Default(0).
			Comment("Milliseconds spent on the test"),
		field.Int("error_count").
			Default(0).
			Comment("Errors committed during the test"),
	}
}

func (ScoreEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("battery_id"),
		index.Fields("test_id"),
	}
}
