package assessment

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/neuroscreen/internal/battery"
	"github.com/abhisek/neuroscreen/internal/fluency"
	"github.com/abhisek/neuroscreen/internal/norms"
	"github.com/abhisek/neuroscreen/internal/phase"
	"github.com/abhisek/neuroscreen/internal/recall"
	"github.com/abhisek/neuroscreen/internal/report"
	"github.com/abhisek/neuroscreen/internal/router"
	"github.com/abhisek/neuroscreen/internal/screen"
	"github.com/abhisek/neuroscreen/internal/screens/summary"
	sess "github.com/abhisek/neuroscreen/internal/session"
	"github.com/abhisek/neuroscreen/internal/store"
	"github.com/abhisek/neuroscreen/internal/stroop"
	"github.com/abhisek/neuroscreen/internal/textanalysis"
	"github.com/abhisek/neuroscreen/internal/trails"
	"github.com/abhisek/neuroscreen/internal/ui/components"
	"github.com/abhisek/neuroscreen/internal/ui/layout"
)

// Phase IDs across the five tests.
const (
	phaseIntro     phase.ID = "intro"
	phaseMemorize  phase.ID = "memorize"
	phaseImmediate phase.ID = "immediate"
	phaseDistract  phase.ID = "distraction"
	phaseDelayed   phase.ID = "delayed"
	phaseSemantic  phase.ID = "semantic"
	phasePhonemic  phase.ID = "phonemic"
	phasePartA     phase.ID = "part-a"
	phasePartB     phase.ID = "part-b"
	phasePractice  phase.ID = "practice"
	phaseScored    phase.ID = "scored"
	phaseDescribe  phase.ID = "describe"
)

const (
	practiceTrials = 4
	scoredTrials   = 20
	trailsColumns  = 5
)

// AssessmentScreen administers the full battery: each test runs its
// own phase sequence, raw scores feed the shared run, and the summary
// screen takes over at the end.
type AssessmentScreen struct {
	run       *sess.Run
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	analyzer  *textanalysis.Service
	reporter  *report.Service
	log       *zap.Logger

	test      battery.Definition
	seq       *phase.Sequencer
	testStart time.Time

	input components.TextInput

	// memory recall
	trial          *recall.Trial
	recalled       []string
	distractA      int
	distractB      int
	distractAnswer int

	// fluency
	flWords    []fluency.WordEntry
	flStart    time.Time
	semMetrics fluency.Metrics
	phMetrics  fluency.Metrics

	// trail making
	validator  *trails.Validator
	trailNodes []string
	cursor     int
	partA      *trails.Result
	partB      *trails.Result

	// color-word
	engine      *stroop.Engine
	practice    *stroop.Engine
	stimulus    stroop.Stimulus
	stimulusAt  time.Time
	trialIdx    int
	lastCorrect *bool

	// picture description
	descLines []string
	analyzing bool

	showingQuitConfirm bool
	finishing          bool
	errMsg             string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.StageProvider = (*AssessmentScreen)(nil)
var _ screen.EscHandler = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen and starts a fresh run. The repos,
// analyzer, and reporter may be nil; the battery still runs without
// persistence or a language model.
func New(table norms.Table, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, analyzer *textanalysis.Service, reporter *report.Service, log *zap.Logger) *AssessmentScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &AssessmentScreen{
		run:       sess.NewRun(table),
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		analyzer:  analyzer,
		reporter:  reporter,
		log:       log,
	}
	s.setupCurrentTest()
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	_ = s.run.AppendStart(context.Background(), s.eventRepo)
	s.log.Info("battery started", zap.String("battery_id", s.run.BatteryID))
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

// Stage labels the header with battery progress.
func (s *AssessmentScreen) Stage() string {
	done := len(s.run.Scores()) + len(s.run.Skipped())
	total := len(battery.All())
	if done >= total {
		return "Finishing"
	}
	return "Test " + strconv.Itoa(done+1) + " of " + strconv.Itoa(total)
}

// HandlesEsc keeps Esc with the screen so quitting always goes through
// the confirmation dialog.
func (s *AssessmentScreen) HandlesEsc() bool {
	return true
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End battery"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.seq.Current().ID {
	case phaseIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "S", Description: "Skip test"},
			{Key: "Esc", Description: "Quit"},
		}
	case phasePartA, phasePartB:
		return []layout.KeyHint{
			{Key: "←→↑↓", Description: "Move"},
			{Key: "Enter", Description: "Connect"},
			{Key: "Esc", Description: "Quit"},
		}
	case phasePractice, phaseScored:
		return []layout.KeyHint{
			{Key: "1-6", Description: "Ink color"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

// setupCurrentTest prepares state and the phase sequence for the test
// the run currently points at.
func (s *AssessmentScreen) setupCurrentTest() {
	def, ok := s.run.CurrentTest()
	if !ok {
		return
	}
	s.test = def
	s.testStart = time.Now()
	s.input = components.NewTextInput("Type here...", false, 30)
	s.recalled = nil
	s.lastCorrect = nil
	s.trialIdx = 0
	s.descLines = nil

	var specs []phase.Spec
	switch def.ID {
	case battery.TestMemory:
		s.trial = &recall.Trial{List: recall.List(int(time.Now().UnixNano()))}
		specs = []phase.Spec{
			{ID: phaseIntro},
			{ID: phaseMemorize, Countdown: 30 * time.Second},
			{ID: phaseImmediate, Countdown: 60 * time.Second},
			{ID: phaseDistract, Countdown: 30 * time.Second},
			{ID: phaseDelayed, Countdown: 60 * time.Second},
		}
	case battery.TestFluency:
		specs = []phase.Spec{
			{ID: phaseIntro},
			{ID: phaseSemantic, Countdown: 60 * time.Second},
			{ID: phasePhonemic, Countdown: 60 * time.Second},
		}
	case battery.TestTrails:
		s.validator = trails.NewValidator(nil, nil)
		s.partA = nil
		s.partB = nil
		specs = []phase.Spec{
			{ID: phaseIntro},
			{ID: phasePartA, Countdown: 5 * time.Minute},
			{ID: phasePartB, Countdown: 5 * time.Minute},
		}
	case battery.TestStroop:
		seed := time.Now().UnixNano()
		s.engine = stroop.NewEngine(seed)
		s.practice = stroop.NewEngine(seed + 1)
		specs = []phase.Spec{
			{ID: phaseIntro},
			{ID: phasePractice},
			{ID: phaseScored},
		}
	case battery.TestPicture:
		specs = []phase.Spec{
			{ID: phaseIntro},
			{ID: phaseDescribe, Countdown: 120 * time.Second},
		}
	}

	s.seq = phase.NewSequencer(specs, s.onPhaseStop)
}

// onPhaseStop freezes the data collected during the phase that just
// ended. Scoring happens later in completeTest, never here.
func (s *AssessmentScreen) onPhaseStop(id phase.ID, expired bool) {
	switch id {
	case phaseImmediate:
		s.trial.Immediate = append([]string(nil), s.recalled...)
		s.recalled = nil
	case phaseDelayed:
		s.trial.Delayed = append([]string(nil), s.recalled...)
		s.recalled = nil
	case phaseSemantic:
		s.semMetrics = fluency.Analyze(s.flWords, fluency.TrialPhase{
			Kind:     fluency.SemanticCategory,
			Category: "animals",
		})
		s.flWords = nil
	case phasePhonemic:
		s.phMetrics = fluency.Analyze(s.flWords, fluency.TrialPhase{
			Kind:   fluency.PhonemicLetter,
			Letter: "f",
		})
		s.flWords = nil
	case phasePartA:
		r := s.validator.Result()
		s.partA = &r
	case phasePartB:
		r := s.validator.Result()
		s.partB = &r
	}
}

// enterPhase arms the phase the sequencer now points at.
func (s *AssessmentScreen) enterPhase() {
	now := time.Now()
	switch s.seq.Current().ID {
	case phaseIntro:
		return
	case phaseImmediate, phaseDelayed, phaseSemantic, phasePhonemic:
		s.input.Reset()
		s.flStart = now
	case phaseDistract:
		s.input = components.NewTextInput("Answer...", true, 6)
		s.nextDistraction()
	case phasePartA:
		s.resetTrail(trails.PartASequence())
	case phasePartB:
		s.resetTrail(trails.PartBSequence())
	case phasePractice, phaseScored:
		s.nextStimulus()
	case phaseDescribe:
		s.input.Reset()
	}
	s.seq.Start(now)
	if id := s.seq.Current().ID; id == phasePartA || id == phasePartB {
		s.validator.Start()
	}
}

func (s *AssessmentScreen) resetTrail(sequence []string) {
	positions := trails.GeneratePositions(len(sequence), trailsRng())
	s.validator.Reset(sequence, positions)
	s.trailNodes = append([]string(nil), sequence...)
	shuffleGrid(s.trailNodes)
	s.cursor = 0
}

// advancePhase moves forward after a stop; at the end of the list the
// test is complete.
func (s *AssessmentScreen) advancePhase() tea.Cmd {
	if s.seq.Next() {
		s.enterPhase()
		return nil
	}
	return s.completeTest()
}

// completeTest scores the finished test, records it on the run, and
// moves on to the next test or ends the battery.
func (s *AssessmentScreen) completeTest() tea.Cmd {
	timeMs := time.Since(s.testStart).Milliseconds()

	switch s.test.ID {
	case battery.TestMemory:
		intrusions := len(s.trial.Immediate) + len(s.trial.Delayed) -
			s.trial.ImmediateScore() - s.trial.DelayedScore()
		s.record(s.trial.RawScore(), timeMs, intrusions)

	case battery.TestFluency:
		raw := float64(s.semMetrics.ValidWords+s.phMetrics.ValidWords) / 2
		errs := s.semMetrics.Repetitions + s.semMetrics.Errors +
			s.phMetrics.Repetitions + s.phMetrics.Errors
		s.record(raw, timeMs, errs)

	case battery.TestTrails:
		if s.partA == nil || s.partB == nil {
			s.skip()
			break
		}
		raw, ok := trails.ExecutiveScore(*s.partA, *s.partB)
		if !ok {
			s.skip()
			break
		}
		s.record(raw, timeMs, s.partA.ErrorCount+s.partB.ErrorCount)

	case battery.TestStroop:
		raw, err := s.engine.Interference()
		if err != nil {
			s.skip()
			break
		}
		errs := s.engine.Stats(stroop.Congruent).ErrorCount +
			s.engine.Stats(stroop.Incongruent).ErrorCount
		s.record(raw, timeMs, errs)

	case battery.TestPicture:
		text := strings.TrimSpace(strings.Join(s.descLines, " "))
		if s.analyzer == nil || text == "" {
			s.skip()
			break
		}
		s.analyzing = true
		return s.analyzeCmd(text, timeMs)
	}

	return s.nextTestOrEnd()
}

func (s *AssessmentScreen) record(raw float64, timeMs int64, errorCount int) {
	if err := s.run.RecordScore(s.test.ID, raw, timeMs, errorCount); err != nil {
		// Normalization failed; the test is excluded rather than
		// fabricated.
		s.log.Warn("score rejected",
			zap.String("test_id", string(s.test.ID)), zap.Error(err))
		s.skip()
		return
	}
	s.log.Info("test scored",
		zap.String("battery_id", s.run.BatteryID),
		zap.String("test_id", string(s.test.ID)),
		zap.Float64("raw", raw))
}

func (s *AssessmentScreen) skip() {
	_ = s.run.Skip(s.test.ID)
	s.log.Info("test skipped",
		zap.String("battery_id", s.run.BatteryID),
		zap.String("test_id", string(s.test.ID)))
}

func (s *AssessmentScreen) nextTestOrEnd() tea.Cmd {
	if s.run.Done() {
		return func() tea.Msg { return batteryEndMsg{} }
	}
	s.setupCurrentTest()
	return s.input.Init()
}

func (s *AssessmentScreen) analyzeCmd(text string, timeMs int64) tea.Cmd {
	analyzer := s.analyzer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		result, err := analyzer.Analyze(ctx, text)
		return analysisDoneMsg{Result: result, Err: err}
	}
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(time.Time(msg))
	case analysisDoneMsg:
		return s.handleAnalysisDone(msg)
	case batteryEndMsg:
		return s.handleBatteryEnd()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *AssessmentScreen) handleTick(now time.Time) (screen.Screen, tea.Cmd) {
	if s.finishing || s.analyzing {
		return s, tickCmd()
	}
	var cmd tea.Cmd
	if s.seq.Tick(now) {
		cmd = s.advancePhase()
	}
	return s, tea.Batch(cmd, tickCmd())
}

func (s *AssessmentScreen) handleAnalysisDone(msg analysisDoneMsg) (screen.Screen, tea.Cmd) {
	s.analyzing = false
	if msg.Err != nil || msg.Result == nil {
		if msg.Err != nil {
			s.log.Warn("speech analysis failed", zap.Error(msg.Err))
		}
		s.skip()
		return s, s.nextTestOrEnd()
	}
	s.run.SetAnalysis(msg.Result)
	s.record(textanalysis.RawScore(msg.Result), time.Since(s.testStart).Milliseconds(), 0)
	return s, s.nextTestOrEnd()
}

// handleBatteryEnd persists the run, refreshes progress, and hands off
// to the summary screen.
func (s *AssessmentScreen) handleBatteryEnd() (screen.Screen, tea.Cmd) {
	s.finishing = true
	ctx := context.Background()

	cs, err := s.run.Finish(ctx, s.eventRepo)
	if err != nil {
		s.log.Error("persisting battery failed", zap.Error(err))
		cs = s.run.Composite()
	}

	s.saveProgress(ctx)

	sum := sess.BuildSummary(s.run)
	if s.reporter != nil {
		s.reporter.RequestReport(ctx, report.Input{
			BatteryID: s.run.BatteryID,
			Composite: cs,
			Analysis:  s.run.Analysis(),
			Skipped:   s.run.SkippedStrings(),
		})
	}

	s.log.Info("battery finished",
		zap.String("battery_id", s.run.BatteryID),
		zap.Float64("ccs", cs.CCS),
		zap.String("interpretation", string(cs.Interpretation)))

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(sum, s.reporter),
		}
	}
}

func (s *AssessmentScreen) saveProgress(ctx context.Context) {
	if s.snapRepo == nil {
		return
	}
	var prev *store.SnapshotData
	if snap, err := s.snapRepo.Latest(ctx); err == nil && snap != nil {
		prev = &snap.Data
	}
	data := sess.UpdateProgress(prev, s.run.Composite(), time.Now().UTC())
	err := s.snapRepo.Save(ctx, &store.Snapshot{Timestamp: time.Now().UTC(), Data: data})
	if err != nil {
		s.log.Warn("saving progress snapshot failed", zap.Error(err))
		return
	}
	_ = s.snapRepo.Prune(ctx, 10)
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.finishing || s.analyzing {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.seq.Stop()
			s.abandonRemaining()
			return s, func() tea.Msg { return batteryEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	switch s.seq.Current().ID {
	case phaseIntro:
		switch key {
		case "enter":
			return s, s.advancePhase()
		case "s", "S":
			s.skip()
			return s, s.nextTestOrEnd()
		}
		return s, nil
	case phaseMemorize:
		// Study phase runs on its timer; enter ends it early.
		if key == "enter" {
			s.seq.Stop()
			return s, s.advancePhase()
		}
		return s, nil
	case phaseImmediate, phaseDelayed:
		return s.handleRecallKey(msg, key)
	case phaseDistract:
		return s.handleDistractionKey(msg, key)
	case phaseSemantic, phasePhonemic:
		return s.handleFluencyKey(msg, key)
	case phasePartA, phasePartB:
		return s.handleTrailKey(key)
	case phasePractice, phaseScored:
		return s.handleStroopKey(key)
	case phaseDescribe:
		return s.handleDescribeKey(msg, key)
	}
	return s, nil
}

// handleRecallKey records one word per enter press; enter on an empty
// field ends the phase early.
func (s *AssessmentScreen) handleRecallKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if key == "enter" {
		word := strings.TrimSpace(s.input.Value())
		if word == "" {
			s.seq.Stop()
			return s, s.advancePhase()
		}
		s.recalled = append(s.recalled, word)
		s.input.Reset()
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AssessmentScreen) handleDistractionKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if key == "enter" {
		answer, err := s.input.NumericValue()
		s.trial.DistractionTotal++
		if err == nil && answer == s.distractAnswer {
			s.trial.DistractionCorrect++
		}
		s.nextDistraction()
		s.input.Reset()
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AssessmentScreen) handleFluencyKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if key == "enter" {
		word := strings.TrimSpace(s.input.Value())
		if word == "" {
			s.seq.Stop()
			return s, s.advancePhase()
		}
		elapsed := time.Since(s.flStart).Milliseconds()
		s.flWords = append(s.flWords, fluency.WordEntry{
			Word:         word,
			CapturedAtMs: time.Now().UnixMilli(),
			ElapsedMs:    elapsed,
		})
		s.input.Reset()
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AssessmentScreen) handleTrailKey(key string) (screen.Screen, tea.Cmd) {
	n := len(s.trailNodes)
	switch key {
	case "left", "h":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor < n-1 {
			s.cursor++
		}
	case "up", "k":
		if s.cursor-trailsColumns >= 0 {
			s.cursor -= trailsColumns
		}
	case "down", "j":
		if s.cursor+trailsColumns < n {
			s.cursor += trailsColumns
		}
	case "enter", " ":
		outcome, err := s.validator.ClickNode(s.trailNodes[s.cursor])
		if err != nil {
			return s, nil
		}
		if outcome == trails.Completed {
			s.seq.Stop()
			return s, s.advancePhase()
		}
		if outcome == trails.ErrorFlagged {
			s.validator.ClearErrorFlag(s.trailNodes[s.cursor])
		}
	}
	return s, nil
}

func (s *AssessmentScreen) handleStroopKey(key string) (screen.Screen, tea.Cmd) {
	if len(key) != 1 || key[0] < '1' || key[0] > '6' {
		return s, nil
	}
	selected := stroop.Palette[key[0]-'1']
	sinceMs := int(time.Since(s.stimulusAt).Milliseconds())

	var result stroop.TrialResult
	if s.seq.Current().ID == phasePractice {
		result = s.practice.Respond(selected, sinceMs)
	} else {
		result = s.engine.Respond(selected, sinceMs)
	}
	correct := result.IsCorrect
	s.lastCorrect = &correct

	s.trialIdx++
	limit := scoredTrials
	if s.seq.Current().ID == phasePractice {
		limit = practiceTrials
	}
	if s.trialIdx >= limit {
		s.trialIdx = 0
		s.lastCorrect = nil
		s.seq.Stop()
		return s, s.advancePhase()
	}
	s.nextStimulus()
	return s, nil
}

func (s *AssessmentScreen) handleDescribeKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if key == "enter" {
		line := strings.TrimSpace(s.input.Value())
		if line == "" {
			s.seq.Stop()
			return s, s.advancePhase()
		}
		s.descLines = append(s.descLines, line)
		s.input.Reset()
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// nextStimulus draws the next color-word stimulus for the active
// condition and restarts the reaction clock.
func (s *AssessmentScreen) nextStimulus() {
	if s.seq.Current().ID == phasePractice {
		s.stimulus = s.practice.NextStimulus(stroop.TrialCondition(s.trialIdx))
	} else {
		s.stimulus = s.engine.NextStimulus(stroop.TrialCondition(s.trialIdx))
	}
	s.stimulusAt = time.Now()
}

// nextDistraction draws a fresh subtraction problem for the
// distraction phase between the two recalls.
func (s *AssessmentScreen) nextDistraction() {
	s.distractA = 20 + rand.Intn(60)
	s.distractB = 3 + rand.Intn(9)
	s.distractAnswer = s.distractA - s.distractB
}

func trailsRng() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffleGrid randomizes node placement in the selection grid so the
// canonical order gives no spatial hint.
func shuffleGrid(nodes []string) {
	rand.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})
}

// abandonRemaining marks every unscored test as skipped so an early
// quit still produces a consistent partial battery.
func (s *AssessmentScreen) abandonRemaining() {
	for {
		def, ok := s.run.CurrentTest()
		if !ok {
			return
		}
		_ = s.run.Skip(def.ID)
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
