// Code generated by ent, DO NOT EDIT.

package batteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/neuroscreen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// BatteryID applies equality check predicate on the "battery_id" field. It's identical to BatteryIDEQ.
func BatteryID(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldBatteryID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldAction, v))
}

// CompletedTests applies equality check predicate on the "completed_tests" field. It's identical to CompletedTestsEQ.
func CompletedTests(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldCompletedTests, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// Ccs applies equality check predicate on the "ccs" field. It's identical to CcsEQ.
func Ccs(v float64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldCcs, v))
}

// Interpretation applies equality check predicate on the "interpretation" field. It's identical to InterpretationEQ.
func Interpretation(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldInterpretation, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// BatteryIDEQ applies the EQ predicate on the "battery_id" field.
func BatteryIDEQ(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldBatteryID, v))
}

// BatteryIDNEQ applies the NEQ predicate on the "battery_id" field.
func BatteryIDNEQ(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNEQ(FieldBatteryID, v))
}

// BatteryIDIn applies the In predicate on the "battery_id" field.
func BatteryIDIn(vs ...string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldIn(FieldBatteryID, vs...))
}

// BatteryIDNotIn applies the NotIn predicate on the "battery_id" field.
func BatteryIDNotIn(vs ...string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNotIn(FieldBatteryID, vs...))
}

// BatteryIDGT applies the GT predicate on the "battery_id" field.
func BatteryIDGT(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGT(FieldBatteryID, v))
}

// BatteryIDGTE applies the GTE predicate on the "battery_id" field.
func BatteryIDGTE(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGTE(FieldBatteryID, v))
}

// BatteryIDLT applies the LT predicate on the "battery_id" field.
func BatteryIDLT(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLT(FieldBatteryID, v))
}

// BatteryIDLTE applies the LTE predicate on the "battery_id" field.
func BatteryIDLTE(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLTE(FieldBatteryID, v))
}

// BatteryIDContains applies the Contains predicate on the "battery_id" field.
func BatteryIDContains(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldContains(FieldBatteryID, v))
}

// BatteryIDHasPrefix applies the HasPrefix predicate on the "battery_id" field.
func BatteryIDHasPrefix(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldHasPrefix(FieldBatteryID, v))
}

// BatteryIDHasSuffix applies the HasSuffix predicate on the "battery_id" field.
func BatteryIDHasSuffix(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldHasSuffix(FieldBatteryID, v))
}

// BatteryIDEqualFold applies the EqualFold predicate on the "battery_id" field.
func BatteryIDEqualFold(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEqualFold(FieldBatteryID, v))
}

// BatteryIDContainsFold applies the ContainsFold predicate on the "battery_id" field.
func BatteryIDContainsFold(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldContainsFold(FieldBatteryID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldContainsFold(FieldAction, v))
}

// CompletedTestsEQ applies the EQ predicate on the "completed_tests" field.
func CompletedTestsEQ(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldCompletedTests, v))
}

// CompletedTestsNEQ applies the NEQ predicate on the "completed_tests" field.
func CompletedTestsNEQ(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNEQ(FieldCompletedTests, v))
}

// CompletedTestsIn applies the In predicate on the "completed_tests" field.
func CompletedTestsIn(vs ...int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldIn(FieldCompletedTests, vs...))
}

// CompletedTestsNotIn applies the NotIn predicate on the "completed_tests" field.
func CompletedTestsNotIn(vs ...int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNotIn(FieldCompletedTests, vs...))
}

// CompletedTestsGT applies the GT predicate on the "completed_tests" field.
func CompletedTestsGT(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGT(FieldCompletedTests, v))
}

// CompletedTestsGTE applies the GTE predicate on the "completed_tests" field.
func CompletedTestsGTE(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGTE(FieldCompletedTests, v))
}

// CompletedTestsLT applies the LT predicate on the "completed_tests" field.
func CompletedTestsLT(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLT(FieldCompletedTests, v))
}

// CompletedTestsLTE applies the LTE predicate on the "completed_tests" field.
func CompletedTestsLTE(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLTE(FieldCompletedTests, v))
}

// SkippedTestsIsNil applies the IsNil predicate on the "skipped_tests" field.
func SkippedTestsIsNil() predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldIsNull(FieldSkippedTests))
}

// SkippedTestsNotNil applies the NotNil predicate on the "skipped_tests" field.
func SkippedTestsNotNil() predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNotNull(FieldSkippedTests))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// CcsEQ applies the EQ predicate on the "ccs" field.
func CcsEQ(v float64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldCcs, v))
}

// CcsNEQ applies the NEQ predicate on the "ccs" field.
func CcsNEQ(v float64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNEQ(FieldCcs, v))
}

// CcsIn applies the In predicate on the "ccs" field.
func CcsIn(vs ...float64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldIn(FieldCcs, vs...))
}

// CcsNotIn applies the NotIn predicate on the "ccs" field.
func CcsNotIn(vs ...float64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNotIn(FieldCcs, vs...))
}

// CcsGT applies the GT predicate on the "ccs" field.
func CcsGT(v float64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGT(FieldCcs, v))
}

// CcsGTE applies the GTE predicate on the "ccs" field.
func CcsGTE(v float64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGTE(FieldCcs, v))
}

// CcsLT applies the LT predicate on the "ccs" field.
func CcsLT(v float64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLT(FieldCcs, v))
}

// CcsLTE applies the LTE predicate on the "ccs" field.
func CcsLTE(v float64) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLTE(FieldCcs, v))
}

// InterpretationEQ applies the EQ predicate on the "interpretation" field.
func InterpretationEQ(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEQ(FieldInterpretation, v))
}

// InterpretationNEQ applies the NEQ predicate on the "interpretation" field.
func InterpretationNEQ(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNEQ(FieldInterpretation, v))
}

// InterpretationIn applies the In predicate on the "interpretation" field.
func InterpretationIn(vs ...string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldIn(FieldInterpretation, vs...))
}

// InterpretationNotIn applies the NotIn predicate on the "interpretation" field.
func InterpretationNotIn(vs ...string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldNotIn(FieldInterpretation, vs...))
}

// InterpretationGT applies the GT predicate on the "interpretation" field.
func InterpretationGT(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGT(FieldInterpretation, v))
}

// InterpretationGTE applies the GTE predicate on the "interpretation" field.
func InterpretationGTE(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldGTE(FieldInterpretation, v))
}

// InterpretationLT applies the LT predicate on the "interpretation" field.
func InterpretationLT(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLT(FieldInterpretation, v))
}

// InterpretationLTE applies the LTE predicate on the "interpretation" field.
func InterpretationLTE(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldLTE(FieldInterpretation, v))
}

// InterpretationContains applies the Contains predicate on the "interpretation" field.
func InterpretationContains(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldContains(FieldInterpretation, v))
}

// InterpretationHasPrefix applies the HasPrefix predicate on the "interpretation" field.
func InterpretationHasPrefix(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldHasPrefix(FieldInterpretation, v))
}

// InterpretationHasSuffix applies the HasSuffix predicate on the "interpretation" field.
func InterpretationHasSuffix(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldHasSuffix(FieldInterpretation, v))
}

// InterpretationEqualFold applies the EqualFold predicate on the "interpretation" field.
func InterpretationEqualFold(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldEqualFold(FieldInterpretation, v))
}

// InterpretationContainsFold applies the ContainsFold predicate on the "interpretation" field.
func InterpretationContainsFold(v string) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.FieldContainsFold(FieldInterpretation, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BatteryEvent) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BatteryEvent) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BatteryEvent) predicate.BatteryEvent {
	return predicate.BatteryEvent(sql.NotPredicates(p))
}
