// Package fluency scores a single verbal fluency trial: a timestamped
// stream of spoken words produced under either a semantic-category or a
// phonemic-letter constraint.
package fluency

import (
	"strings"
	"unicode"
)

// quartileMs is the width of one bucket in the temporal distribution.
// Four buckets cover the standard 60-second trial.
const quartileMs = 15000

// WordEntry is one transcribed word pushed by the capture layer during
// an active trial. ElapsedMs is relative to trial start and is
// non-decreasing within one trial.
type WordEntry struct {
	Word         string
	CapturedAtMs int64
	ElapsedMs    int64
}

// PhaseKind selects the validity and clustering rules for a trial.
type PhaseKind int

const (
	// SemanticCategory constrains words by meaning (e.g. animals).
	SemanticCategory PhaseKind = iota
	// PhonemicLetter constrains words by starting letter.
	PhonemicLetter
)

// TrialPhase describes the constraint a fluency trial ran under.
type TrialPhase struct {
	Kind PhaseKind
	// Category names the semantic category for SemanticCategory phases
	// (e.g. "animals", "fruits").
	Category string
	// Letter is the required initial letter for PhonemicLetter phases,
	// lowercase.
	Letter string
}

// Metrics is the derived result of one fluency trial. It is computed
// wholesale from the frozen word stream at trial stop and never patched
// incrementally.
type Metrics struct {
	TotalWords      int
	ValidWords      int
	Repetitions     int
	Errors          int
	ClusterCount    int
	SwitchCount     int
	MeanInterWordMs float64
	QuartileCounts  [4]int
}

// Analyze computes the full metric set for one trial. An empty stream
// yields the zero Metrics.
func Analyze(words []WordEntry, phase TrialPhase) Metrics {
	var m Metrics

	// Normalize and discard degenerate tokens up front so every later
	// pass works on the same cleaned stream.
	type token struct {
		word      string
		elapsedMs int64
	}
	var stream []token
	for _, w := range words {
		n := Normalize(w.Word)
		if len([]rune(n)) <= 1 {
			continue
		}
		stream = append(stream, token{word: n, elapsedMs: w.ElapsedMs})
	}
	if len(stream) == 0 {
		return m
	}

	m.TotalWords = len(stream)

	// Valid words and order-dependent repetitions share one pass: a word
	// whose running count is already positive is a repetition.
	seen := make(map[string]int, len(stream))
	for _, t := range stream {
		if seen[t.word] > 0 {
			m.Repetitions++
		} else {
			m.ValidWords++
		}
		seen[t.word]++
	}

	// Rule violations only exist for phonemic phases.
	if phase.Kind == PhonemicLetter && phase.Letter != "" {
		for _, t := range stream {
			if !strings.HasPrefix(t.word, phase.Letter) {
				m.Errors++
			}
		}
	}

	// Clusters: runs of >=2 consecutive related words. The trailing run
	// is flushed under the same rule.
	clusterLen := 1
	for i := 1; i < len(stream); i++ {
		if related(phase, stream[i-1].word, stream[i].word) {
			clusterLen++
			continue
		}
		if clusterLen >= 2 {
			m.ClusterCount++
		}
		clusterLen = 1
	}
	if clusterLen >= 2 {
		m.ClusterCount++
	}

	// Switches: category tag changes between consecutive words.
	for i := 1; i < len(stream); i++ {
		if categoryTag(phase, stream[i-1].word) != categoryTag(phase, stream[i].word) {
			m.SwitchCount++
		}
	}

	// Temporal distribution.
	if len(stream) >= 2 {
		var sum float64
		for i := 1; i < len(stream); i++ {
			sum += float64(stream[i].elapsedMs - stream[i-1].elapsedMs)
		}
		m.MeanInterWordMs = sum / float64(len(stream)-1)
	}
	for _, t := range stream {
		idx := t.elapsedMs / quartileMs
		if idx >= 0 && idx < 4 {
			// Words past the 60s mark stay in the totals but fall
			// outside the histogram.
			m.QuartileCounts[idx]++
		}
	}

	return m
}

// Normalize lowercases a raw token and strips every non-letter rune.
func Normalize(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// related reports whether two consecutive normalized words extend a
// cluster. Semantic phases require both words to sit in the same
// sub-category table; phonemic phases compare the first two characters.
func related(phase TrialPhase, a, b string) bool {
	if phase.Kind == PhonemicLetter {
		return phonemicTag(a) == phonemicTag(b)
	}
	sa := SubCategoryFor(phase.Category, a)
	if sa == "" {
		return false
	}
	return sa == SubCategoryFor(phase.Category, b)
}

// categoryTag assigns the tag used for switch counting. Unknown words
// in a semantic phase all share the "other" tag, so a run of unknown
// words counts as a single category.
func categoryTag(phase TrialPhase, word string) string {
	if phase.Kind == PhonemicLetter {
		return phonemicTag(word)
	}
	if sc := SubCategoryFor(phase.Category, word); sc != "" {
		return sc
	}
	return "other"
}

// phonemicTag is the first two characters of a normalized word. Tokens
// shorter than two runes never survive normalization.
func phonemicTag(word string) string {
	r := []rune(word)
	return string(r[:2])
}
