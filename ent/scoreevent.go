// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/neuroscreen/ent/scoreevent"
)

// ScoreEvent is the model entity for the ScoreEvent schema.
type ScoreEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to BatteryEvent
	BatteryID string `json:"battery_id,omitempty"`
	// Which test produced this score
	TestID string `json:"test_id,omitempty"`
	// Cognitive domain the test probes
	Domain string `json:"domain,omitempty"`
	// Raw score in the test's native unit
	RawScore float64 `json:"raw_score,omitempty"`
	// Normalized score in standard deviation units
	ZScore float64 `json:"z_score,omitempty"`
	// Milliseconds spent on the test
	TimeMs int64 `json:"time_ms,omitempty"`
	// Errors committed during the test
	ErrorCount   int `json:"error_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScoreEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scoreevent.FieldRawScore, scoreevent.FieldZScore:
			values[i] = new(sql.NullFloat64)
		case scoreevent.FieldID, scoreevent.FieldSequence, scoreevent.FieldTimeMs, scoreevent.FieldErrorCount:
			values[i] = new(sql.NullInt64)
		case scoreevent.FieldBatteryID, scoreevent.FieldTestID, scoreevent.FieldDomain:
			values[i] = new(sql.NullString)
		case scoreevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScoreEvent fields.
func (_m *ScoreEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scoreevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scoreevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case scoreevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case scoreevent.FieldBatteryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field battery_id", values[i])
			} else if value.Valid {
				_m.BatteryID = value.String
			}
		case scoreevent.FieldTestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value.Valid {
				_m.TestID = value.String
			}
		case scoreevent.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case scoreevent.FieldRawScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_score", values[i])
			} else if value.Valid {
				_m.RawScore = value.Float64
			}
		case scoreevent.FieldZScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field z_score", values[i])
			} else if value.Valid {
				_m.ZScore = value.Float64
			}
		case scoreevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = value.Int64
			}
		case scoreevent.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScoreEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ScoreEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScoreEvent.
// Note that you need to call ScoreEvent.Unwrap() before calling this method if this ScoreEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScoreEvent) Update() *ScoreEventUpdateOne {
	return NewScoreEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScoreEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScoreEvent) Unwrap() *ScoreEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScoreEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScoreEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ScoreEvent(")
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
	builder.WriteString("test_id=")
	builder.WriteString(_m.TestID)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("raw_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawScore))
	builder.WriteString(", ")
	builder.WriteString("z_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ZScore))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteByte(')')
	return builder.String()
}

// ScoreEvents is a parsable slice of ScoreEvent.
type ScoreEvents []*ScoreEvent
