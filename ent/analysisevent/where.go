// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/neuroscreen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// BatteryID applies equality check predicate on the "battery_id" field. It's identical to BatteryIDEQ.
func BatteryID(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldBatteryID, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldRiskLevel, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldConfidence, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldWordCount, v))
}

// SentenceCount applies equality check predicate on the "sentence_count" field. It's identical to SentenceCountEQ.
func SentenceCount(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSentenceCount, v))
}

// LexicalDiversity applies equality check predicate on the "lexical_diversity" field. It's identical to LexicalDiversityEQ.
func LexicalDiversity(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldLexicalDiversity, v))
}

// ClassifierName applies equality check predicate on the "classifier_name" field. It's identical to ClassifierNameEQ.
func ClassifierName(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldClassifierName, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldReasoning, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldTimestamp, v))
}

// BatteryIDEQ applies the EQ predicate on the "battery_id" field.
func BatteryIDEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldBatteryID, v))
}

// BatteryIDNEQ applies the NEQ predicate on the "battery_id" field.
func BatteryIDNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldBatteryID, v))
}

// BatteryIDIn applies the In predicate on the "battery_id" field.
func BatteryIDIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldBatteryID, vs...))
}

// BatteryIDNotIn applies the NotIn predicate on the "battery_id" field.
func BatteryIDNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldBatteryID, vs...))
}

// BatteryIDGT applies the GT predicate on the "battery_id" field.
func BatteryIDGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldBatteryID, v))
}

// BatteryIDGTE applies the GTE predicate on the "battery_id" field.
func BatteryIDGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldBatteryID, v))
}

// BatteryIDLT applies the LT predicate on the "battery_id" field.
func BatteryIDLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldBatteryID, v))
}

// BatteryIDLTE applies the LTE predicate on the "battery_id" field.
func BatteryIDLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldBatteryID, v))
}

// BatteryIDContains applies the Contains predicate on the "battery_id" field.
func BatteryIDContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldBatteryID, v))
}

// BatteryIDHasPrefix applies the HasPrefix predicate on the "battery_id" field.
func BatteryIDHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldBatteryID, v))
}

// BatteryIDHasSuffix applies the HasSuffix predicate on the "battery_id" field.
func BatteryIDHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldBatteryID, v))
}

// BatteryIDEqualFold applies the EqualFold predicate on the "battery_id" field.
func BatteryIDEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldBatteryID, v))
}

// BatteryIDContainsFold applies the ContainsFold predicate on the "battery_id" field.
func BatteryIDContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldBatteryID, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldRiskLevel, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldConfidence, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldWordCount, v))
}

// SentenceCountEQ applies the EQ predicate on the "sentence_count" field.
func SentenceCountEQ(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSentenceCount, v))
}

// SentenceCountNEQ applies the NEQ predicate on the "sentence_count" field.
func SentenceCountNEQ(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldSentenceCount, v))
}

// SentenceCountIn applies the In predicate on the "sentence_count" field.
func SentenceCountIn(vs ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldSentenceCount, vs...))
}

// SentenceCountNotIn applies the NotIn predicate on the "sentence_count" field.
func SentenceCountNotIn(vs ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldSentenceCount, vs...))
}

// SentenceCountGT applies the GT predicate on the "sentence_count" field.
func SentenceCountGT(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldSentenceCount, v))
}

// SentenceCountGTE applies the GTE predicate on the "sentence_count" field.
func SentenceCountGTE(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldSentenceCount, v))
}

// SentenceCountLT applies the LT predicate on the "sentence_count" field.
func SentenceCountLT(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldSentenceCount, v))
}

// SentenceCountLTE applies the LTE predicate on the "sentence_count" field.
func SentenceCountLTE(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldSentenceCount, v))
}

// LexicalDiversityEQ applies the EQ predicate on the "lexical_diversity" field.
func LexicalDiversityEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldLexicalDiversity, v))
}

// LexicalDiversityNEQ applies the NEQ predicate on the "lexical_diversity" field.
func LexicalDiversityNEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldLexicalDiversity, v))
}

// LexicalDiversityIn applies the In predicate on the "lexical_diversity" field.
func LexicalDiversityIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldLexicalDiversity, vs...))
}

// LexicalDiversityNotIn applies the NotIn predicate on the "lexical_diversity" field.
func LexicalDiversityNotIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldLexicalDiversity, vs...))
}

// LexicalDiversityGT applies the GT predicate on the "lexical_diversity" field.
func LexicalDiversityGT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldLexicalDiversity, v))
}

// LexicalDiversityGTE applies the GTE predicate on the "lexical_diversity" field.
func LexicalDiversityGTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldLexicalDiversity, v))
}

// LexicalDiversityLT applies the LT predicate on the "lexical_diversity" field.
func LexicalDiversityLT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldLexicalDiversity, v))
}

// LexicalDiversityLTE applies the LTE predicate on the "lexical_diversity" field.
func LexicalDiversityLTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldLexicalDiversity, v))
}

// ClassifierNameEQ applies the EQ predicate on the "classifier_name" field.
func ClassifierNameEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldClassifierName, v))
}

// ClassifierNameNEQ applies the NEQ predicate on the "classifier_name" field.
func ClassifierNameNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldClassifierName, v))
}

// ClassifierNameIn applies the In predicate on the "classifier_name" field.
func ClassifierNameIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldClassifierName, vs...))
}

// ClassifierNameNotIn applies the NotIn predicate on the "classifier_name" field.
func ClassifierNameNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldClassifierName, vs...))
}

// ClassifierNameGT applies the GT predicate on the "classifier_name" field.
func ClassifierNameGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldClassifierName, v))
}

// ClassifierNameGTE applies the GTE predicate on the "classifier_name" field.
func ClassifierNameGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldClassifierName, v))
}

// ClassifierNameLT applies the LT predicate on the "classifier_name" field.
func ClassifierNameLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldClassifierName, v))
}

// ClassifierNameLTE applies the LTE predicate on the "classifier_name" field.
func ClassifierNameLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldClassifierName, v))
}

// ClassifierNameContains applies the Contains predicate on the "classifier_name" field.
func ClassifierNameContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldClassifierName, v))
}

// ClassifierNameHasPrefix applies the HasPrefix predicate on the "classifier_name" field.
func ClassifierNameHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldClassifierName, v))
}

// ClassifierNameHasSuffix applies the HasSuffix predicate on the "classifier_name" field.
func ClassifierNameHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldClassifierName, v))
}

// ClassifierNameEqualFold applies the EqualFold predicate on the "classifier_name" field.
func ClassifierNameEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldClassifierName, v))
}

// ClassifierNameContainsFold applies the ContainsFold predicate on the "classifier_name" field.
func ClassifierNameContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldClassifierName, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldReasoning, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.NotPredicates(p))
}
