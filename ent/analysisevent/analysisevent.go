// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisevent type in the database.
	Label = "analysis_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldBatteryID holds the string denoting the battery_id field in the database.
	FieldBatteryID = "battery_id"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldSentenceCount holds the string denoting the sentence_count field in the database.
	FieldSentenceCount = "sentence_count"
	// FieldLexicalDiversity holds the string denoting the lexical_diversity field in the database.
	FieldLexicalDiversity = "lexical_diversity"
	// FieldClassifierName holds the string denoting the classifier_name field in the database.
	FieldClassifierName = "classifier_name"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// Table holds the table name of the analysisevent in the database.
	Table = "analysis_events"
)

// Columns holds all SQL columns for analysisevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldBatteryID,
	FieldRiskLevel,
	FieldConfidence,
	FieldWordCount,
	FieldSentenceCount,
	FieldLexicalDiversity,
	FieldClassifierName,
	FieldReasoning,
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
	// RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	RiskLevelValidator func(string) error
	// DefaultWordCount holds the default value on creation for the "word_count" field.
	DefaultWordCount int
	// DefaultSentenceCount holds the default value on creation for the "sentence_count" field.
	DefaultSentenceCount int
	// DefaultLexicalDiversity holds the default value on creation for the "lexical_diversity" field.
	DefaultLexicalDiversity float64
	// ClassifierNameValidator is a validator for the "classifier_name" field. It is called by the builders before save.
	ClassifierNameValidator func(string) error
	// DefaultReasoning holds the default value on creation for the "reasoning" field.
	DefaultReasoning string
)

// OrderOption defines the ordering options for the AnalysisEvent queries.
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

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// BySentenceCount orders the results by the sentence_count field.
func BySentenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentenceCount, opts...).ToFunc()
}

// ByLexicalDiversity orders the results by the lexical_diversity field.
func ByLexicalDiversity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLexicalDiversity, opts...).ToFunc()
}

// ByClassifierName orders the results by the classifier_name field.
func ByClassifierName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassifierName, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}
