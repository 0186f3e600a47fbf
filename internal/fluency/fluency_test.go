package fluency

import (
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func entries(words []string, elapsed []int64) []WordEntry {
	out := make([]WordEntry, len(words))
	for i, w := range words {
		out[i] = WordEntry{Word: w, CapturedAtMs: elapsed[i], ElapsedMs: elapsed[i]}
	}
	return out
}

func semanticAnimals() TrialPhase {
	return TrialPhase{Kind: SemanticCategory, Category: "animals"}
}

func TestAnalyze_EmptyStream(t *testing.T) {
	m := Analyze(nil, semanticAnimals())
	if m != (Metrics{}) {
		t.Errorf("Analyze(empty) = %+v, want zero Metrics", m)
	}
}

func TestAnalyze_BasicCounts(t *testing.T) {
	// dog, cat, dog, lion: 4 total, 3 valid, 1 repetition, no errors.
	words := entries([]string{"dog", "cat", "dog", "lion"}, []int64{0, 5000, 10000, 15000})
	m := Analyze(words, semanticAnimals())

	if m.TotalWords != 4 {
		t.Errorf("TotalWords = %d, want 4", m.TotalWords)
	}
	if m.ValidWords != 3 {
		t.Errorf("ValidWords = %d, want 3", m.ValidWords)
	}
	if m.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", m.Repetitions)
	}
	if m.Errors != 0 {
		t.Errorf("Errors = %d, want 0", m.Errors)
	}
}

func TestAnalyze_CaseNormalization(t *testing.T) {
	words := entries([]string{"Dog", "DOG", "dog"}, []int64{0, 1000, 2000})
	m := Analyze(words, semanticAnimals())

	if m.ValidWords != 1 {
		t.Errorf("ValidWords = %d, want 1", m.ValidWords)
	}
	if m.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", m.Repetitions)
	}
}

func TestAnalyze_DiscardsShortTokens(t *testing.T) {
	// "a" and punctuation-only tokens normalize to length <= 1.
	words := entries([]string{"a", "...", "dog", "!"}, []int64{0, 500, 1000, 1500})
	m := Analyze(words, semanticAnimals())

	if m.TotalWords != 1 {
		t.Errorf("TotalWords = %d, want 1", m.TotalWords)
	}
}

func TestAnalyze_PhonemicErrors(t *testing.T) {
	phase := TrialPhase{Kind: PhonemicLetter, Letter: "f"}
	words := entries([]string{"fish", "fan", "dog", "fog"}, []int64{0, 1000, 2000, 3000})
	m := Analyze(words, phase)

	if m.Errors != 1 {
		t.Errorf("Errors = %d, want 1", m.Errors)
	}
}

func TestAnalyze_SemanticNoErrors(t *testing.T) {
	// Off-category words are never counted as errors in semantic phases.
	words := entries([]string{"dog", "table", "chair"}, []int64{0, 1000, 2000})
	m := Analyze(words, semanticAnimals())

	if m.Errors != 0 {
		t.Errorf("Errors = %d, want 0", m.Errors)
	}
}

func TestAnalyze_SemanticClusters(t *testing.T) {
	// dog,cat = pets cluster; lion,tiger,bear = wild cluster; cow alone.
	words := entries(
		[]string{"dog", "cat", "lion", "tiger", "bear", "cow"},
		[]int64{0, 1000, 2000, 3000, 4000, 5000},
	)
	m := Analyze(words, semanticAnimals())

	if m.ClusterCount != 2 {
		t.Errorf("ClusterCount = %d, want 2", m.ClusterCount)
	}
}

func TestAnalyze_TrailingClusterFlushed(t *testing.T) {
	words := entries([]string{"cow", "dog", "cat"}, []int64{0, 1000, 2000})
	m := Analyze(words, semanticAnimals())

	if m.ClusterCount != 1 {
		t.Errorf("ClusterCount = %d, want 1", m.ClusterCount)
	}
}

func TestAnalyze_SinglePairIsOneCluster(t *testing.T) {
	words := entries([]string{"dog", "cat"}, []int64{0, 1000})
	m := Analyze(words, semanticAnimals())

	if m.ClusterCount != 1 {
		t.Errorf("ClusterCount = %d, want 1", m.ClusterCount)
	}
}

func TestAnalyze_NoClustersWithoutRuns(t *testing.T) {
	// Alternating sub-categories never form a run of two.
	words := entries([]string{"dog", "lion", "cow", "whale"}, []int64{0, 1000, 2000, 3000})
	m := Analyze(words, semanticAnimals())

	if m.ClusterCount != 0 {
		t.Errorf("ClusterCount = %d, want 0", m.ClusterCount)
	}
	if m.SwitchCount != 3 {
		t.Errorf("SwitchCount = %d, want 3", m.SwitchCount)
	}
}

func TestAnalyze_PhonemicClusters(t *testing.T) {
	// "fa" prefix pair clusters, "fi" pair clusters; switch between them.
	phase := TrialPhase{Kind: PhonemicLetter, Letter: "f"}
	words := entries([]string{"fan", "farm", "fish", "fin"}, []int64{0, 1000, 2000, 3000})
	m := Analyze(words, phase)

	if m.ClusterCount != 2 {
		t.Errorf("ClusterCount = %d, want 2", m.ClusterCount)
	}
	if m.SwitchCount != 1 {
		t.Errorf("SwitchCount = %d, want 1", m.SwitchCount)
	}
}

func TestAnalyze_UnknownWordsShareTag(t *testing.T) {
	// Consecutive off-table words are one "other" run: no switch between
	// them, and no cluster either since relatedness needs a table hit.
	words := entries([]string{"table", "chair", "dog"}, []int64{0, 1000, 2000})
	m := Analyze(words, semanticAnimals())

	if m.SwitchCount != 1 {
		t.Errorf("SwitchCount = %d, want 1", m.SwitchCount)
	}
	if m.ClusterCount != 0 {
		t.Errorf("ClusterCount = %d, want 0", m.ClusterCount)
	}
}

func TestAnalyze_MeanInterWord(t *testing.T) {
	words := entries([]string{"dog", "cat", "lion"}, []int64{0, 4000, 10000})
	m := Analyze(words, semanticAnimals())

	if !almostEqual(m.MeanInterWordMs, 5000) {
		t.Errorf("MeanInterWordMs = %f, want 5000", m.MeanInterWordMs)
	}
}

func TestAnalyze_MeanInterWordSingleWord(t *testing.T) {
	words := entries([]string{"dog"}, []int64{0})
	m := Analyze(words, semanticAnimals())

	if m.MeanInterWordMs != 0 {
		t.Errorf("MeanInterWordMs = %f, want 0", m.MeanInterWordMs)
	}
}

func TestAnalyze_QuartileBuckets(t *testing.T) {
	words := entries(
		[]string{"dog", "cat", "lion", "tiger", "bear"},
		[]int64{1000, 16000, 31000, 46000, 59999},
	)
	m := Analyze(words, semanticAnimals())

	want := [4]int{1, 1, 1, 2}
	if m.QuartileCounts != want {
		t.Errorf("QuartileCounts = %v, want %v", m.QuartileCounts, want)
	}
}

func TestAnalyze_QuartileOverflowDroppedFromHistogramOnly(t *testing.T) {
	words := entries([]string{"dog", "cat"}, []int64{1000, 70000})
	m := Analyze(words, semanticAnimals())

	if m.TotalWords != 2 {
		t.Errorf("TotalWords = %d, want 2", m.TotalWords)
	}
	total := m.QuartileCounts[0] + m.QuartileCounts[1] + m.QuartileCounts[2] + m.QuartileCounts[3]
	if total != 1 {
		t.Errorf("histogram total = %d, want 1", total)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	words := entries(
		[]string{"dog", "cat", "whale", "dolphin", "cow", "dog"},
		[]int64{0, 2000, 5000, 9000, 14000, 20000},
	)
	first := Analyze(words, semanticAnimals())
	second := Analyze(words, semanticAnimals())

	if first != second {
		t.Errorf("Analyze not deterministic: %+v vs %+v", first, second)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Dog", "dog"},
		{"  cat! ", "cat"},
		{"don't", "dont"},
		{"123", ""},
		{"Ému", "ému"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSubCategoryFor(t *testing.T) {
	if got := SubCategoryFor("animals", "dog"); got != "animals/pets" {
		t.Errorf("SubCategoryFor(animals, dog) = %q, want animals/pets", got)
	}
	if got := SubCategoryFor("fruits", "lemon"); got != "fruits/citrus" {
		t.Errorf("SubCategoryFor(fruits, lemon) = %q, want fruits/citrus", got)
	}
	if got := SubCategoryFor("animals", "table"); got != "" {
		t.Errorf("SubCategoryFor(animals, table) = %q, want empty", got)
	}
}
