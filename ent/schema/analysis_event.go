package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisEvent records a linguistic analysis of a speech sample.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("battery_id").
			NotEmpty().
			Comment("Links to BatteryEvent"),
		field.String("risk_level").
			NotEmpty().
			Comment("low, medium, or high"),
		field.Float("confidence").
			Comment("Classifier confidence in [0,1]"),
		field.Int("word_count").
			Default(0),
		field.Int("sentence_count").
			Default(0),
		field.Float("lexical_diversity").
			Default(0).
			Comment("Type-token ratio of the sample"),
		field.String("classifier_name").
			NotEmpty().
			Comment("Which classifier produced the result"),
		field.String("reasoning").
			Optional().
			Default(""),
	}
}

func (AnalysisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("battery_id"),
		index.Fields("risk_level"),
	}
}
