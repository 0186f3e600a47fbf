// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "battery_id", Type: field.TypeString},
		{Name: "risk_level", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "sentence_count", Type: field.TypeInt, Default: 0},
		{Name: "lexical_diversity", Type: field.TypeFloat64, Default: 0},
		{Name: "classifier_name", Type: field.TypeString},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[1]},
			},
			{
				Name:    "analysisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[2]},
			},
			{
				Name:    "analysisevent_battery_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[3]},
			},
			{
				Name:    "analysisevent_risk_level",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[4]},
			},
		},
	}
	// BatteryEventsColumns holds the columns for the "battery_events" table.
	BatteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "battery_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "completed_tests", Type: field.TypeInt, Default: 0},
		{Name: "skipped_tests", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "ccs", Type: field.TypeFloat64, Default: 0},
		{Name: "interpretation", Type: field.TypeString, Default: ""},
	}
	// BatteryEventsTable holds the schema information for the "battery_events" table.
	BatteryEventsTable = &schema.Table{
		Name:       "battery_events",
		Columns:    BatteryEventsColumns,
		PrimaryKey: []*schema.Column{BatteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BatteryEventsColumns[1]},
			},
			{
				Name:    "batteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BatteryEventsColumns[2]},
			},
			{
				Name:    "batteryevent_battery_id",
				Unique:  false,
				Columns: []*schema.Column{BatteryEventsColumns[3]},
			},
			{
				Name:    "batteryevent_action",
				Unique:  false,
				Columns: []*schema.Column{BatteryEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ScoreEventsColumns holds the columns for the "score_events" table.
	ScoreEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "battery_id", Type: field.TypeString},
		{Name: "test_id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "raw_score", Type: field.TypeFloat64},
		{Name: "z_score", Type: field.TypeFloat64},
		{Name: "time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
	}
	// ScoreEventsTable holds the schema information for the "score_events" table.
	ScoreEventsTable = &schema.Table{
		Name:       "score_events",
		Columns:    ScoreEventsColumns,
		PrimaryKey: []*schema.Column{ScoreEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scoreevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[1]},
			},
			{
				Name:    "scoreevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[2]},
			},
			{
				Name:    "scoreevent_battery_id",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[3]},
			},
			{
				Name:    "scoreevent_test_id",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
		BatteryEventsTable,
		LlmRequestEventsTable,
		ScoreEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
