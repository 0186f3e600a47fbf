// Code generated by ent, DO NOT EDIT.

package batteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the batteryevent type in the database.
	Label = "battery_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldBatteryID holds the string denoting the battery_id field in the database.
	FieldBatteryID = "battery_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldCompletedTests holds the string denoting the completed_tests field in the database.
	FieldCompletedTests = "completed_tests"
	// FieldSkippedTests holds the string denoting the skipped_tests field in the database.
	FieldSkippedTests = "skipped_tests"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldCcs holds the string denoting the ccs field in the database.
	FieldCcs = "ccs"
	// FieldInterpretation holds the string denoting the interpretation field in the database.
	FieldInterpretation = "interpretation"
	// Table holds the table name of the batteryevent in the database.
	Table = "battery_events"
)

// Columns holds all SQL columns for batteryevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldBatteryID,
	FieldAction,
	FieldCompletedTests,
	FieldSkippedTests,
	FieldDurationSecs,
	FieldCcs,
	FieldInterpretation,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// BatteryIDValidator is a validator for the "battery_id" field. It is called by the builders before save.
	BatteryIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultCompletedTests holds the default value on creation for the "completed_tests" field.
	DefaultCompletedTests int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultCcs holds the default value on creation for the "ccs" field.
	DefaultCcs float64
	// DefaultInterpretation holds the default value on creation for the "interpretation" field.
	DefaultInterpretation string
)

// OrderOption defines the ordering options for the BatteryEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByBatteryID orders the results by the battery_id field.
func ByBatteryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatteryID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByCompletedTests orders the results by the completed_tests field.
func ByCompletedTests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedTests, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByCcs orders the results by the ccs field.
func ByCcs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCcs, opts...).ToFunc()
}

// ByInterpretation orders the results by the interpretation field.
func ByInterpretation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterpretation, opts...).ToFunc()
}
