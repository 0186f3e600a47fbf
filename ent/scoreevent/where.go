// Code generated by ent, DO NOT EDIT.

package scoreevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/neuroscreen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTimestamp, v))
}

// BatteryID applies equality check predicate on the "battery_id" field. It's identical to BatteryIDEQ.
func BatteryID(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldBatteryID, v))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTestID, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldDomain, v))
}

// RawScore applies equality check predicate on the "raw_score" field. It's identical to RawScoreEQ.
func RawScore(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldRawScore, v))
}

// ZScore applies equality check predicate on the "z_score" field. It's identical to ZScoreEQ.
func ZScore(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldZScore, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTimeMs, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldErrorCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldTimestamp, v))
}

// BatteryIDEQ applies the EQ predicate on the "battery_id" field.
func BatteryIDEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldBatteryID, v))
}

// BatteryIDNEQ applies the NEQ predicate on the "battery_id" field.
func BatteryIDNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldBatteryID, v))
}

// BatteryIDIn applies the In predicate on the "battery_id" field.
func BatteryIDIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldBatteryID, vs...))
}

// BatteryIDNotIn applies the NotIn predicate on the "battery_id" field.
func BatteryIDNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldBatteryID, vs...))
}

// BatteryIDGT applies the GT predicate on the "battery_id" field.
func BatteryIDGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldBatteryID, v))
}

// BatteryIDGTE applies the GTE predicate on the "battery_id" field.
func BatteryIDGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldBatteryID, v))
}

// BatteryIDLT applies the LT predicate on the "battery_id" field.
func BatteryIDLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldBatteryID, v))
}

// BatteryIDLTE applies the LTE predicate on the "battery_id" field.
func BatteryIDLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldBatteryID, v))
}

// BatteryIDContains applies the Contains predicate on the "battery_id" field.
func BatteryIDContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldBatteryID, v))
}

// BatteryIDHasPrefix applies the HasPrefix predicate on the "battery_id" field.
func BatteryIDHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldBatteryID, v))
}

// BatteryIDHasSuffix applies the HasSuffix predicate on the "battery_id" field.
func BatteryIDHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldBatteryID, v))
}

// BatteryIDEqualFold applies the EqualFold predicate on the "battery_id" field.
func BatteryIDEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldBatteryID, v))
}

// BatteryIDContainsFold applies the ContainsFold predicate on the "battery_id" field.
func BatteryIDContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldBatteryID, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldTestID, v))
}

// TestIDContains applies the Contains predicate on the "test_id" field.
func TestIDContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldTestID, v))
}

// TestIDHasPrefix applies the HasPrefix predicate on the "test_id" field.
func TestIDHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldTestID, v))
}

// TestIDHasSuffix applies the HasSuffix predicate on the "test_id" field.
func TestIDHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldTestID, v))
}

// TestIDEqualFold applies the EqualFold predicate on the "test_id" field.
func TestIDEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldTestID, v))
}

// TestIDContainsFold applies the ContainsFold predicate on the "test_id" field.
func TestIDContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldTestID, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldDomain, v))
}

// RawScoreEQ applies the EQ predicate on the "raw_score" field.
func RawScoreEQ(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldRawScore, v))
}

// RawScoreNEQ applies the NEQ predicate on the "raw_score" field.
func RawScoreNEQ(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldRawScore, v))
}

// RawScoreIn applies the In predicate on the "raw_score" field.
func RawScoreIn(vs ...float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldRawScore, vs...))
}

// RawScoreNotIn applies the NotIn predicate on the "raw_score" field.
func RawScoreNotIn(vs ...float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldRawScore, vs...))
}

// RawScoreGT applies the GT predicate on the "raw_score" field.
func RawScoreGT(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldRawScore, v))
}

// RawScoreGTE applies the GTE predicate on the "raw_score" field.
func RawScoreGTE(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldRawScore, v))
}

// RawScoreLT applies the LT predicate on the "raw_score" field.
func RawScoreLT(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldRawScore, v))
}

// RawScoreLTE applies the LTE predicate on the "raw_score" field.
func RawScoreLTE(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldRawScore, v))
}

// ZScoreEQ applies the EQ predicate on the "z_score" field.
func ZScoreEQ(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldZScore, v))
}

// ZScoreNEQ applies the NEQ predicate on the "z_score" field.
func ZScoreNEQ(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldZScore, v))
}

// ZScoreIn applies the In predicate on the "z_score" field.
func ZScoreIn(vs ...float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldZScore, vs...))
}

// ZScoreNotIn applies the NotIn predicate on the "z_score" field.
func ZScoreNotIn(vs ...float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldZScore, vs...))
}

// ZScoreGT applies the GT predicate on the "z_score" field.
func ZScoreGT(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldZScore, v))
}

// ZScoreGTE applies the GTE predicate on the "z_score" field.
func ZScoreGTE(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldZScore, v))
}

// ZScoreLT applies the LT predicate on the "z_score" field.
func ZScoreLT(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldZScore, v))
}

// ZScoreLTE applies the LTE predicate on the "z_score" field.
func ZScoreLTE(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldZScore, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldTimeMs, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldErrorCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.NotPredicates(p))
}
