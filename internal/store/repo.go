package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// BatteryEventData captures a battery lifecycle event.
type BatteryEventData struct {
	BatteryID      string
	Action         string // start or end
	CompletedTests int
	SkippedTests   []string
	DurationSecs   int
	CCS            float64
	Interpretation string
}

// ScoreEventData captures the result of a single test.
type ScoreEventData struct {
	BatteryID  string
	TestID     string
	Domain     string
	RawScore   float64
	ZScore     float64
	TimeMs     int64
	ErrorCount int
}

// AnalysisEventData captures a linguistic analysis result.
type AnalysisEventData struct {
	BatteryID        string
	RiskLevel        string
	Confidence       float64
	WordCount        int
	SentenceCount    int
	LexicalDiversity float64
	ClassifierName   string
	Reasoning        string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// BatteryRun summarizes one completed battery for history views.
type BatteryRun struct {
	BatteryID      string
	CompletedAt    time.Time
	CompletedTests int
	SkippedTests   []string
	DurationSecs   int
	CCS            float64
	Interpretation string
}

// ScoreRecord is a persisted test score read back from the log.
type ScoreRecord struct {
	TestID     string
	Domain     string
	RawScore   float64
	ZScore     float64
	TimeMs     int64
	ErrorCount int
	Timestamp  time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendBattery records a battery lifecycle event.
	AppendBattery(ctx context.Context, data BatteryEventData) error

	// AppendScore records a single test score.
	AppendScore(ctx context.Context, data ScoreEventData) error

	// AppendAnalysis records a linguistic analysis result.
	AppendAnalysis(ctx context.Context, data AnalysisEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// CompletedBatteries returns finished battery runs, newest first.
	CompletedBatteries(ctx context.Context, opts QueryOpts) ([]BatteryRun, error)

	// ScoresForBattery returns all scores recorded for a battery run.
	ScoresForBattery(ctx context.Context, batteryID string) ([]ScoreRecord, error)

	// LLMEvents returns recorded LLM API calls, newest first.
	LLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)
}

// LLMRequestRecord is a persisted LLM API call read back from the log.
type LLMRequestRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// TrendPoint is one composite score observation in the progress trend.
type TrendPoint struct {
	Timestamp      time.Time `json:"timestamp"`
	CCS            float64   `json:"ccs"`
	Interpretation string    `json:"interpretation"`
}

// SnapshotData captures the participant's progress at a point in time.
type SnapshotData struct {
	Version            int          `json:"version"`
	CompletedBatteries int          `json:"completed_batteries"`
	LastCCS            float64      `json:"last_ccs"`
	LastInterpretation string       `json:"last_interpretation"`
	Trend              []TrendPoint `json:"trend"`
}

// Snapshot represents a point-in-time capture of progress state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
