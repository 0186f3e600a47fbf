// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/neuroscreen/ent/batteryevent"
)

// BatteryEvent is the model entity for the BatteryEvent schema.
type BatteryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a battery run
	BatteryID string `json:"battery_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// Tests finished with a score (on end only)
	CompletedTests int `json:"completed_tests,omitempty"`
	// Test IDs the participant skipped (on end only)
	SkippedTests []string `json:"skipped_tests,omitempty"`
	// Actual duration in seconds (on end only)
	DurationSecs int `json:"duration_secs,omitempty"`
	// Composite cognitive score (on end only)
	Ccs float64 `json:"ccs,omitempty"`
	// healthy, mild, or strong (on end only)
	Interpretation string `json:"interpretation,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BatteryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batteryevent.FieldSkippedTests:
			values[i] = new([]byte)
		case batteryevent.FieldCcs:
			values[i] = new(sql.NullFloat64)
		case batteryevent.FieldID, batteryevent.FieldSequence, batteryevent.FieldCompletedTests, batteryevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case batteryevent.FieldBatteryID, batteryevent.FieldAction, batteryevent.FieldInterpretation:
			values[i] = new(sql.NullString)
		case batteryevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BatteryEvent fields.
func (_m *BatteryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batteryevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case batteryevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case batteryevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case batteryevent.FieldBatteryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field battery_id", values[i])
			} else if value.Valid {
				_m.BatteryID = value.String
			}
		case batteryevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case batteryevent.FieldCompletedTests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_tests", values[i])
			} else if value.Valid {
				_m.CompletedTests = int(value.Int64)
			}
		case batteryevent.FieldSkippedTests:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skipped_tests", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkippedTests); err != nil {
					return fmt.Errorf("unmarshal field skipped_tests: %w", err)
				}
			}
		case batteryevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		case batteryevent.FieldCcs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ccs", values[i])
			} else if value.Valid {
				_m.Ccs = value.Float64
			}
		case batteryevent.FieldInterpretation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interpretation", values[i])
			} else if value.Valid {
				_m.Interpretation = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BatteryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BatteryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BatteryEvent.
// Note that you need to call BatteryEvent.Unwrap() before calling this method if this BatteryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BatteryEvent) Update() *BatteryEventUpdateOne {
	return NewBatteryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BatteryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BatteryEvent) Unwrap() *BatteryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BatteryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BatteryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BatteryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("battery_id=")
	builder.WriteString(_m.BatteryID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("completed_tests=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedTests))
	builder.WriteString(", ")
	builder.WriteString("skipped_tests=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkippedTests))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteString(", ")
	builder.WriteString("ccs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ccs))
	builder.WriteString(", ")
	builder.WriteString("interpretation=")
	builder.WriteString(_m.Interpretation)
	builder.WriteByte(')')
	return builder.String()
}

// BatteryEvents is a parsable slice of BatteryEvent.
type BatteryEvents []*BatteryEvent
