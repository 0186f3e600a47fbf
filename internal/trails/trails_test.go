package trails

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

// fakeClock returns a now func that advances by step on every call.
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

func newStartedValidator(seq []string) *Validator {
	v := NewValidator(seq, GeneratePositions(len(seq), rand.New(rand.NewSource(1))))
	v.Start()
	return v
}

func TestPartASequence(t *testing.T) {
	seq := PartASequence()
	if len(seq) != 25 {
		t.Fatalf("len = %d, want 25", len(seq))
	}
	if seq[0] != "1" || seq[24] != "25" {
		t.Errorf("sequence ends = %q, %q, want 1, 25", seq[0], seq[24])
	}
}

func TestPartBSequence(t *testing.T) {
	seq := PartBSequence()
	if len(seq) != 25 {
		t.Fatalf("len = %d, want 25", len(seq))
	}
	want := []string{"1", "A", "2", "B", "3", "C"}
	for i, w := range want {
		if seq[i] != w {
			t.Errorf("seq[%d] = %q, want %q", i, seq[i], w)
		}
	}
	if seq[24] != "13" {
		t.Errorf("last = %q, want 13", seq[24])
	}
}

func TestClickNode_PerfectPartA(t *testing.T) {
	v := newStartedValidator(PartASequence())

	for _, id := range PartASequence() {
		outcome, err := v.ClickNode(id)
		if err != nil {
			t.Fatalf("ClickNode(%q) error: %v", id, err)
		}
		if id == "25" && outcome != Completed {
			t.Errorf("final click outcome = %v, want Completed", outcome)
		}
	}

	res := v.Result()
	if res.ErrorCount != 0 {
		t.Errorf("ErrorCount = %d, want 0", res.ErrorCount)
	}
	if len(res.Connections) != 24 {
		t.Errorf("Connections = %d, want 24", len(res.Connections))
	}
	if !res.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestClickNode_WrongNodeFlagsError(t *testing.T) {
	v := newStartedValidator(PartASequence())

	outcome, err := v.ClickNode("5")
	if err != nil {
		t.Fatalf("ClickNode error: %v", err)
	}
	if outcome != ErrorFlagged {
		t.Errorf("outcome = %v, want ErrorFlagged", outcome)
	}
	if v.Result().ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", v.Result().ErrorCount)
	}
	if v.Target() != "1" {
		t.Errorf("Target = %q, want unchanged 1", v.Target())
	}
}

func TestClickNode_BeforeStart(t *testing.T) {
	v := NewValidator(PartASequence(), nil)

	_, err := v.ClickNode("1")
	if err != ErrNotStarted {
		t.Fatalf("err = %v, want ErrNotStarted", err)
	}
	if v.Result().ErrorCount != 0 {
		t.Errorf("ErrorCount = %d, want 0 (no side effects)", v.Result().ErrorCount)
	}
	if v.Target() != "1" {
		t.Errorf("Target = %q, want 1", v.Target())
	}
}

func TestClickNode_ErrorFlagAndClear(t *testing.T) {
	v := newStartedValidator(PartASequence())

	v.ClickNode("3")
	var flagged *Node
	for _, n := range v.Nodes() {
		if n.ID == "3" {
			flagged = n
		}
	}
	if flagged == nil || !flagged.FlaggedError {
		t.Fatal("node 3 not flagged after wrong click")
	}

	v.ClearErrorFlag("3")
	if flagged.FlaggedError {
		t.Error("flag not cleared")
	}
}

func TestElapsed_FrozenAtCompletion(t *testing.T) {
	seq := []string{"1", "2"}
	v := NewValidator(seq, nil)
	v.now = fakeClock(time.Unix(0, 0), time.Second)

	v.Start() // t=0
	v.ClickNode("1")
	v.ClickNode("2") // completion stamps t=1s

	first := v.ElapsedSeconds()
	second := v.ElapsedSeconds()
	if first != second {
		t.Errorf("elapsed not frozen: %f then %f", first, second)
	}
	if math.Abs(first-1.0) > 0.001 {
		t.Errorf("elapsed = %f, want 1.0", first)
	}
}

func TestReset_ClearsState(t *testing.T) {
	v := newStartedValidator(PartASequence())
	v.ClickNode("1")
	v.ClickNode("9")

	v.Reset(PartBSequence(), nil)
	res := v.Result()
	if res.ErrorCount != 0 || len(res.Connections) != 0 || res.Completed {
		t.Errorf("Reset left state behind: %+v", res)
	}
	if v.Target() != "1" {
		t.Errorf("Target = %q, want 1", v.Target())
	}
	if _, err := v.ClickNode("1"); err != ErrNotStarted {
		t.Errorf("click after Reset err = %v, want ErrNotStarted", err)
	}
}

func TestGeneratePositions_CountAndBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := GeneratePositions(25, rng)
	if len(points) != 25 {
		t.Fatalf("len = %d, want 25", len(points))
	}
	for _, p := range points {
		if p.X < 0 || p.X > CanvasWidth || p.Y < 0 || p.Y > CanvasHeight {
			t.Errorf("point %+v outside canvas", p)
		}
	}
}

func TestGeneratePositions_Separation(t *testing.T) {
	// At low density the attempt cap is never hit, so the separation
	// guarantee must hold exactly.
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		points := GeneratePositions(10, rng)
		for i := range points {
			for j := i + 1; j < len(points); j++ {
				dx := points[i].X - points[j].X
				dy := points[i].Y - points[j].Y
				if math.Hypot(dx, dy) < MinSeparation {
					t.Errorf("seed %d: points %d and %d closer than %v", seed, i, j, MinSeparation)
				}
			}
		}
	}
}

func TestExecutiveScore(t *testing.T) {
	partA := Result{ElapsedSeconds: 30, Completed: true}
	partB := Result{ElapsedSeconds: 75, Completed: true}

	score, ok := ExecutiveScore(partA, partB)
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if math.Abs(score-45) > 0.001 {
		t.Errorf("score = %f, want 45", score)
	}
}

func TestExecutiveScore_UndefinedWithoutBothParts(t *testing.T) {
	done := Result{ElapsedSeconds: 30, Completed: true}
	pending := Result{ElapsedSeconds: 10, Completed: false}

	if _, ok := ExecutiveScore(done, pending); ok {
		t.Error("ok = true with incomplete Part B, want false")
	}
	if _, ok := ExecutiveScore(pending, done); ok {
		t.Error("ok = true with incomplete Part A, want false")
	}
}
