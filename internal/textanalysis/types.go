// Package textanalysis screens a transcribed speech sample for
// linguistic markers of cognitive decline.
package textanalysis

import "errors"

// minSampleChars is the shortest sample worth analyzing.
const minSampleChars = 10

// ErrSampleTooShort reports a speech sample below the minimum length.
var ErrSampleTooShort = errors.New("speech sample too short to analyze")

// RiskLevel is the screening outcome for a speech sample.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// LinguisticFeatures are surface statistics of the sample.
type LinguisticFeatures struct {
	WordCount           int
	SentenceCount       int
	AvgWordsPerSentence float64
	LexicalDiversity    float64
}

// Result is the outcome of analyzing one speech sample.
type Result struct {
	RiskLevel      RiskLevel
	Confidence     float64
	Features       LinguisticFeatures
	ClassifierName string
	Reasoning      string
}
