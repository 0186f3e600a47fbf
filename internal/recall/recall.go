// Package recall scores the memory test: a presented word list, an
// immediate recall, a distraction task, and a delayed recall.
package recall

import (
	"github.com/abhisek/neuroscreen/internal/fluency"
)

// wordLists are the built-in presentation lists, one of which is chosen
// per battery. Fifteen common concrete nouns each.
var wordLists = [][]string{
	{
		"apple", "table", "river", "candle", "garden",
		"mirror", "bridge", "basket", "window", "pillow",
		"forest", "bottle", "ladder", "carpet", "hammer",
	},
	{
		"orange", "chair", "ocean", "lantern", "meadow",
		"carpet", "tunnel", "kettle", "curtain", "blanket",
		"valley", "saucer", "shovel", "drawer", "needle",
	},
}

// List returns presentation list n (mod the number of built-in lists).
// The returned slice is a copy.
func List(n int) []string {
	src := wordLists[((n%len(wordLists))+len(wordLists))%len(wordLists)]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Trial collects one memory test's data. Recalled word slices are
// frozen at each phase's stop and scored wholesale.
type Trial struct {
	List      []string
	Immediate []string
	Delayed   []string
	// DistractionCorrect counts correct responses in the intervening
	// distraction task. Recorded for display; it does not feed the raw
	// score.
	DistractionCorrect int
	DistractionTotal   int
}

// ScorePhase counts how many distinct list words appear in recalled.
// Matching is case-insensitive on normalized forms, and each list word
// counts at most once however often it is repeated.
func ScorePhase(list, recalled []string) int {
	members := make(map[string]bool, len(list))
	for _, w := range list {
		members[fluency.Normalize(w)] = true
	}
	credited := make(map[string]bool)
	for _, w := range recalled {
		n := fluency.Normalize(w)
		if members[n] && !credited[n] {
			credited[n] = true
		}
	}
	return len(credited)
}

// ImmediateScore is the distinct correct count for the immediate phase.
func (t *Trial) ImmediateScore() int {
	return ScorePhase(t.List, t.Immediate)
}

// DelayedScore is the distinct correct count for the delayed phase.
func (t *Trial) DelayedScore() int {
	return ScorePhase(t.List, t.Delayed)
}

// RawScore is the test's raw score: immediate plus delayed correct
// counts, normalized downstream against population norms.
func (t *Trial) RawScore() float64 {
	return float64(t.ImmediateScore() + t.DelayedScore())
}
