package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BatteryEvent records battery lifecycle events (start/end).
type BatteryEvent struct {
	ent.Schema
}

func (BatteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BatteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("battery_id").
			NotEmpty().
			Comment("UUID grouping events in a battery run"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("completed_tests").
			Default(0).
			Comment("Tests finished with a score (on end only)"),
		field.JSON("skipped_tests", []string{}).
			Optional().
			Comment("Test IDs the participant skipped (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.Float("ccs").
			Default(0).
			Comment("Composite cognitive score (on end only)"),
		field.String("interpretation").
			Default("").
			Comment("healthy, mild, or strong (on end only)"),
	}
}

func (BatteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("battery_id"),
		index.Fields("action"),
	}
}
