package assessment

import (
	"context"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/neuroscreen/internal/battery"
	"github.com/abhisek/neuroscreen/internal/norms"
	"github.com/abhisek/neuroscreen/internal/router"
	"github.com/abhisek/neuroscreen/internal/screen"
	"github.com/abhisek/neuroscreen/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	batteryEvents []store.BatteryEventData
	scoreEvents   []store.ScoreEventData
}

func (m *mockEventRepo) AppendBattery(_ context.Context, data store.BatteryEventData) error {
	m.batteryEvents = append(m.batteryEvents, data)
	return nil
}
func (m *mockEventRepo) AppendScore(_ context.Context, data store.ScoreEventData) error {
	m.scoreEvents = append(m.scoreEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnalysis(_ context.Context, _ store.AnalysisEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) CompletedBatteries(_ context.Context, _ store.QueryOpts) ([]store.BatteryRun, error) {
	return nil, nil
}
func (m *mockEventRepo) ScoresForBattery(_ context.Context, _ string) ([]store.ScoreRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testAssessmentScreen() (*AssessmentScreen, *mockEventRepo, *mockSnapshotRepo) {
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	s := New(norms.DefaultTable(), eventRepo, snapRepo, nil, nil, nil)
	return s, eventRepo, snapRepo
}

func TestAssessmentScreen_Title(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	if s.Title() != "Assessment" {
		t.Errorf("Title = %q, want %q", s.Title(), "Assessment")
	}
}

func TestAssessmentScreen_StageStartsAtFirstTest(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	if got := s.Stage(); got != "Test 1 of 5" {
		t.Errorf("Stage = %q, want %q", got, "Test 1 of 5")
	}
}

func TestAssessmentScreen_StartsOnMemoryIntro(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	if s.test.ID != battery.TestMemory {
		t.Errorf("first test = %s, want %s", s.test.ID, battery.TestMemory)
	}
	if s.seq.Current().ID != phaseIntro {
		t.Errorf("first phase = %s, want %s", s.seq.Current().ID, phaseIntro)
	}
}

func TestAssessmentScreen_SkipAdvancesToNextTest(t *testing.T) {
	s, _, _ := testAssessmentScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	ss := scr.(*AssessmentScreen)

	skipped := ss.run.Skipped()
	if len(skipped) != 1 || skipped[0] != battery.TestMemory {
		t.Fatalf("skipped = %v, want [%s]", skipped, battery.TestMemory)
	}
	if ss.test.ID != battery.TestFluency {
		t.Errorf("current test = %s, want %s", ss.test.ID, battery.TestFluency)
	}
	if got := ss.Stage(); got != "Test 2 of 5" {
		t.Errorf("Stage = %q, want %q", got, "Test 2 of 5")
	}
}

func TestAssessmentScreen_MemoryPhaseOrder(t *testing.T) {
	s, _, _ := testAssessmentScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // intro -> memorize
	ss := scr.(*AssessmentScreen)
	if ss.seq.Current().ID != phaseMemorize {
		t.Fatalf("phase = %s, want %s", ss.seq.Current().ID, phaseMemorize)
	}

	scr, _ = ss.Update(specialKey(tea.KeyEnter)) // memorize -> immediate
	ss = scr.(*AssessmentScreen)
	if ss.seq.Current().ID != phaseImmediate {
		t.Fatalf("phase = %s, want %s", ss.seq.Current().ID, phaseImmediate)
	}
}

func TestAssessmentScreen_RecallCollectsWords(t *testing.T) {
	s, _, _ := testAssessmentScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*AssessmentScreen)

	ss.input.Model.SetValue("apple")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*AssessmentScreen)
	if len(ss.recalled) != 1 || ss.recalled[0] != "apple" {
		t.Fatalf("recalled = %v, want [apple]", ss.recalled)
	}

	// Enter on an empty field ends the recall phase.
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*AssessmentScreen)
	if ss.seq.Current().ID != phaseDistract {
		t.Errorf("phase = %s, want %s", ss.seq.Current().ID, phaseDistract)
	}
	if len(ss.trial.Immediate) != 1 {
		t.Errorf("immediate recall = %v, want one word", ss.trial.Immediate)
	}
}

func TestAssessmentScreen_DistractionScoring(t *testing.T) {
	s, _, _ := testAssessmentScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // empty immediate -> distraction
	ss := scr.(*AssessmentScreen)
	if ss.seq.Current().ID != phaseDistract {
		t.Fatalf("phase = %s, want %s", ss.seq.Current().ID, phaseDistract)
	}

	ss.input.Model.SetValue(strconv.Itoa(ss.distractAnswer))
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*AssessmentScreen)
	if ss.trial.DistractionCorrect != 1 || ss.trial.DistractionTotal != 1 {
		t.Errorf("distraction = %d/%d, want 1/1",
			ss.trial.DistractionCorrect, ss.trial.DistractionTotal)
	}

	ss.input.Model.SetValue("99999")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*AssessmentScreen)
	if ss.trial.DistractionCorrect != 1 || ss.trial.DistractionTotal != 2 {
		t.Errorf("distraction = %d/%d, want 1/2",
			ss.trial.DistractionCorrect, ss.trial.DistractionTotal)
	}
}

func TestAssessmentScreen_FluencyCollectsWords(t *testing.T) {
	s, _, _ := testAssessmentScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))             // skip memory
	scr, _ = scr.Update(specialKey(tea.KeyEnter))  // fluency intro -> semantic
	ss := scr.(*AssessmentScreen)
	if ss.seq.Current().ID != phaseSemantic {
		t.Fatalf("phase = %s, want %s", ss.seq.Current().ID, phaseSemantic)
	}

	ss.input.Model.SetValue("dog")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*AssessmentScreen)
	if len(ss.flWords) != 1 || ss.flWords[0].Word != "dog" {
		t.Fatalf("flWords = %v, want one entry for dog", ss.flWords)
	}

	// Empty submit ends the semantic trial and scores it.
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*AssessmentScreen)
	if ss.seq.Current().ID != phasePhonemic {
		t.Errorf("phase = %s, want %s", ss.seq.Current().ID, phasePhonemic)
	}
	if ss.semMetrics.ValidWords != 1 {
		t.Errorf("semantic valid words = %d, want 1", ss.semMetrics.ValidWords)
	}
}

func TestAssessmentScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testAssessmentScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*AssessmentScreen)
	if !ss.showingQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*AssessmentScreen)
	if ss.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestAssessmentScreen_QuitConfirm_YesAbandonsBattery(t *testing.T) {
	s, _, _ := testAssessmentScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('y'))
	ss := scr.(*AssessmentScreen)

	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(batteryEndMsg); !ok {
		t.Fatal("expected batteryEndMsg after quit confirmation")
	}
	if len(ss.run.Skipped()) != len(battery.All()) {
		t.Errorf("skipped = %d tests, want %d",
			len(ss.run.Skipped()), len(battery.All()))
	}
}

func TestAssessmentScreen_BatteryEndPersistsAndHandsOff(t *testing.T) {
	s, eventRepo, snapRepo := testAssessmentScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('y'))
	scr, cmd = scr.Update(cmd())

	if cmd == nil {
		t.Fatal("expected a handoff command at battery end")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg carrying the summary screen")
	}

	foundEnd := false
	for _, ev := range eventRepo.batteryEvents {
		if ev.Action == "end" {
			foundEnd = true
			if len(ev.SkippedTests) != len(battery.All()) {
				t.Errorf("end event skipped = %d, want %d",
					len(ev.SkippedTests), len(battery.All()))
			}
		}
	}
	if !foundEnd {
		t.Error("expected a battery end event")
	}
	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}
}

func TestAssessmentScreen_KeyHints(t *testing.T) {
	s, _, _ := testAssessmentScreen()

	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Fatal("expected non-empty key hints")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*AssessmentScreen)
	hints = ss.KeyHints()
	if len(hints) != 2 {
		t.Errorf("quit confirm hints = %d, want 2", len(hints))
	}
}

func TestAssessmentScreen_View(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty intro view")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*AssessmentScreen)
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty quit confirm view")
	}
}

func TestAssessmentScreen_HandlesEsc(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	if !s.HandlesEsc() {
		t.Error("expected the assessment screen to own Esc handling")
	}
}
