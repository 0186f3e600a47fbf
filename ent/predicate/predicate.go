// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisEvent is the predicate function for analysisevent builders.
type AnalysisEvent func(*sql.Selector)

// BatteryEvent is the predicate function for batteryevent builders.
type BatteryEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ScoreEvent is the predicate function for scoreevent builders.
type ScoreEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
