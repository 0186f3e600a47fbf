// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/neuroscreen/ent/analysisevent"
	"github.com/abhisek/neuroscreen/ent/batteryevent"
	"github.com/abhisek/neuroscreen/ent/llmrequestevent"
	"github.com/abhisek/neuroscreen/ent/schema"
	"github.com/abhisek/neuroscreen/ent/scoreevent"
	"github.com/abhisek/neuroscreen/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescBatteryID is the schema descriptor for battery_id field.
	analysiseventDescBatteryID := analysiseventFields[0].Descriptor()
	// analysisevent.BatteryIDValidator is a validator for the "battery_id" field. It is called by the builders before save.
	analysisevent.BatteryIDValidator = analysiseventDescBatteryID.Validators[0].(func(string) error)
	// analysiseventDescRiskLevel is the schema descriptor for risk_level field.
	analysiseventDescRiskLevel := analysiseventFields[1].Descriptor()
	// analysisevent.RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	analysisevent.RiskLevelValidator = analysiseventDescRiskLevel.Validators[0].(func(string) error)
	// analysiseventDescWordCount is the schema descriptor for word_count field.
	analysiseventDescWordCount := analysiseventFields[3].Descriptor()
	// analysisevent.DefaultWordCount holds the default value on creation for the word_count field.
	analysisevent.DefaultWordCount = analysiseventDescWordCount.Default.(int)
	// analysiseventDescSentenceCount is the schema descriptor for sentence_count field.
	analysiseventDescSentenceCount := analysiseventFields[4].Descriptor()
	// analysisevent.DefaultSentenceCount holds the default value on creation for the sentence_count field.
	analysisevent.DefaultSentenceCount = analysiseventDescSentenceCount.Default.(int)
	// analysiseventDescLexicalDiversity is the schema descriptor for lexical_diversity field.
	analysiseventDescLexicalDiversity := analysiseventFields[5].Descriptor()
	// analysisevent.DefaultLexicalDiversity holds the default value on creation for the lexical_diversity field.
	analysisevent.DefaultLexicalDiversity = analysiseventDescLexicalDiversity.Default.(float64)
	// analysiseventDescClassifierName is the schema descriptor for classifier_name field.
	analysiseventDescClassifierName := analysiseventFields[6].Descriptor()
	// analysisevent.ClassifierNameValidator is a validator for the "classifier_name" field. It is called by the builders before save.
	analysisevent.ClassifierNameValidator = analysiseventDescClassifierName.Validators[0].(func(string) error)
	// analysiseventDescReasoning is the schema descriptor for reasoning field.
	analysiseventDescReasoning := analysiseventFields[7].Descriptor()
	// analysisevent.DefaultReasoning holds the default value on creation for the reasoning field.
	analysisevent.DefaultReasoning = analysiseventDescReasoning.Default.(string)
	batteryeventMixin := schema.BatteryEvent{}.Mixin()
	batteryeventMixinFields0 := batteryeventMixin[0].Fields()
	_ = batteryeventMixinFields0
	batteryeventFields := schema.BatteryEvent{}.Fields()
	_ = batteryeventFields
	// batteryeventDescTimestamp is the schema descriptor for timestamp field.
	batteryeventDescTimestamp := batteryeventMixinFields0[1].Descriptor()
	// batteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	batteryevent.DefaultTimestamp = batteryeventDescTimestamp.Default.(func() time.Time)
	// batteryeventDescBatteryID is the schema descriptor for battery_id field.
	batteryeventDescBatteryID := batteryeventFields[0].Descriptor()
	// batteryevent.BatteryIDValidator is a validator for the "battery_id" field. It is called by the builders before save.
	batteryevent.BatteryIDValidator = batteryeventDescBatteryID.Validators[0].(func(string) error)
	// batteryeventDescAction is the schema descriptor for action field.
	batteryeventDescAction := batteryeventFields[1].Descriptor()
	// batteryevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	batteryevent.ActionValidator = batteryeventDescAction.Validators[0].(func(string) error)
	// batteryeventDescCompletedTests is the schema descriptor for completed_tests field.
	batteryeventDescCompletedTests := batteryeventFields[2].Descriptor()
	// batteryevent.DefaultCompletedTests holds the default value on creation for the completed_tests field.
	batteryevent.DefaultCompletedTests = batteryeventDescCompletedTests.Default.(int)
	// batteryeventDescDurationSecs is the schema descriptor for duration_secs field.
	batteryeventDescDurationSecs := batteryeventFields[4].Descriptor()
	// batteryevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	batteryevent.DefaultDurationSecs = batteryeventDescDurationSecs.Default.(int)
	// batteryeventDescCcs is the schema descriptor for ccs field.
	batteryeventDescCcs := batteryeventFields[5].Descriptor()
	// batteryevent.DefaultCcs holds the default value on creation for the ccs field.
	batteryevent.DefaultCcs = batteryeventDescCcs.Default.(float64)
	// batteryeventDescInterpretation is the schema descriptor for interpretation field.
	batteryeventDescInterpretation := batteryeventFields[6].Descriptor()
	// batteryevent.DefaultInterpretation holds the default value on creation for the interpretation field.
	batteryevent.DefaultInterpretation = batteryeventDescInterpretation.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	scoreeventMixin := schema.ScoreEvent{}.Mixin()
	scoreeventMixinFields0 := scoreeventMixin[0].Fields()
	_ = scoreeventMixinFields0
	scoreeventFields := schema.ScoreEvent{}.Fields()
	_ = scoreeventFields
	// scoreeventDescTimestamp is the schema descriptor for timestamp field.
	scoreeventDescTimestamp := scoreeventMixinFields0[1].Descriptor()
	// scoreevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scoreevent.DefaultTimestamp = scoreeventDescTimestamp.Default.(func() time.Time)
	// scoreeventDescBatteryID is the schema descriptor for battery_id field.
	scoreeventDescBatteryID := scoreeventFields[0].Descriptor()
	// scoreevent.BatteryIDValidator is a validator for the "battery_id" field. It is called by the builders before save.
	scoreevent.BatteryIDValidator = scoreeventDescBatteryID.Validators[0].(func(string) error)
	// scoreeventDescTestID is the schema descriptor for test_id field.
	scoreeventDescTestID := scoreeventFields[1].Descriptor()
	// scoreevent.TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	scoreevent.TestIDValidator = scoreeventDescTestID.Validators[0].(func(string) error)
	// scoreeventDescDomain is the schema descriptor for domain field.
	scoreeventDescDomain := scoreeventFields[2].Descriptor()
	// scoreevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	scoreevent.DomainValidator = scoreeventDescDomain.Validators[0].(func(string) error)
	// scoreeventDescTimeMs is the schema descriptor for time_ms field.
	scoreeventDescTimeMs := scoreeventFields[5].Descriptor()
	// scoreevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	scoreevent.DefaultTimeMs = scoreeventDescTimeMs.Default.(int64)
	// scoreeventDescErrorCount is the schema descriptor for error_count field.
	scoreeventDescErrorCount := scoreeventFields[6].Descriptor()
	// scoreevent.DefaultErrorCount holds the default value on creation for the error_count field.
	scoreevent.DefaultErrorCount = scoreeventDescErrorCount.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
