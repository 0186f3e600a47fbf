package recall

import "testing"

func TestScorePhase_Basic(t *testing.T) {
	list := []string{"apple", "table", "river"}
	got := ScorePhase(list, []string{"apple", "river", "banana"})
	if got != 2 {
		t.Errorf("ScorePhase = %d, want 2", got)
	}
}

func TestScorePhase_CaseInsensitive(t *testing.T) {
	list := []string{"apple", "table"}
	got := ScorePhase(list, []string{"APPLE", "Table"})
	if got != 2 {
		t.Errorf("ScorePhase = %d, want 2", got)
	}
}

func TestScorePhase_RepeatsCreditedOnce(t *testing.T) {
	list := []string{"apple", "table"}
	got := ScorePhase(list, []string{"apple", "apple", "apple"})
	if got != 1 {
		t.Errorf("ScorePhase = %d, want 1", got)
	}
}

func TestScorePhase_Empty(t *testing.T) {
	if got := ScorePhase([]string{"apple"}, nil); got != 0 {
		t.Errorf("ScorePhase(empty recall) = %d, want 0", got)
	}
}

func TestTrial_RawScore(t *testing.T) {
	trial := &Trial{
		List:      []string{"apple", "table", "river", "candle"},
		Immediate: []string{"apple", "table", "river"},
		Delayed:   []string{"apple", "candle"},
	}
	if got := trial.RawScore(); got != 5.0 {
		t.Errorf("RawScore = %f, want 5.0", got)
	}
}

func TestList_CopiesAndWraps(t *testing.T) {
	a := List(0)
	a[0] = "mutated"
	if List(0)[0] == "mutated" {
		t.Error("List returns a live reference to the registry")
	}
	if len(List(5)) == 0 {
		t.Error("List index should wrap, not panic or return empty")
	}
	if len(List(-1)) == 0 {
		t.Error("negative index should wrap")
	}
}
