// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/neuroscreen/ent/analysisevent"
)

// AnalysisEvent is the model entity for the AnalysisEvent schema.
type AnalysisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to BatteryEvent
	BatteryID string `json:"battery_id,omitempty"`
	// low, medium, or high
	RiskLevel string `json:"risk_level,omitempty"`
	// Classifier confidence in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// WordCount holds the value of the "word_count" field.
	WordCount int `json:"word_count,omitempty"`
	// SentenceCount holds the value of the "sentence_count" field.
	SentenceCount int `json:"sentence_count,omitempty"`
	// Type-token ratio of the sample
	LexicalDiversity float64 `json:"lexical_diversity,omitempty"`
	// Which classifier produced the result
	ClassifierName string `json:"classifier_name,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning    string `json:"reasoning,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldConfidence, analysisevent.FieldLexicalDiversity:
			values[i] = new(sql.NullFloat64)
		case analysisevent.FieldID, analysisevent.FieldSequence, analysisevent.FieldWordCount, analysisevent.FieldSentenceCount:
			values[i] = new(sql.NullInt64)
		case analysisevent.FieldBatteryID, analysisevent.FieldRiskLevel, analysisevent.FieldClassifierName, analysisevent.FieldReasoning:
			values[i] = new(sql.NullString)
		case analysisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisEvent fields.
func (_m *AnalysisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case analysisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case analysisevent.FieldBatteryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field battery_id", values[i])
			} else if value.Valid {
				_m.BatteryID = value.String
			}
		case analysisevent.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case analysisevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case analysisevent.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				_m.WordCount = int(value.Int64)
			}
		case analysisevent.FieldSentenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sentence_count", values[i])
			} else if value.Valid {
				_m.SentenceCount = int(value.Int64)
			}
		case analysisevent.FieldLexicalDiversity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lexical_diversity", values[i])
			} else if value.Valid {
				_m.LexicalDiversity = value.Float64
			}
		case analysisevent.FieldClassifierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classifier_name", values[i])
			} else if value.Valid {
				_m.ClassifierName = value.String
			}
		case analysisevent.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisEvent.
// Note that you need to call AnalysisEvent.Unwrap() before calling this method if this AnalysisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisEvent) Update() *AnalysisEventUpdateOne {
	return NewAnalysisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisEvent) Unwrap() *AnalysisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisEvent(")
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
	builder.WriteString("risk_level=")
	builder.WriteString(_m.RiskLevel)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordCount))
	builder.WriteString(", ")
	builder.WriteString("sentence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentenceCount))
	builder.WriteString(", ")
	builder.WriteString("lexical_diversity=")
	builder.WriteString(fmt.Sprintf("%v", _m.LexicalDiversity))
	builder.WriteString(", ")
	builder.WriteString("classifier_name=")
	builder.WriteString(_m.ClassifierName)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisEvents is a parsable slice of AnalysisEvent.
type AnalysisEvents []*AnalysisEvent
