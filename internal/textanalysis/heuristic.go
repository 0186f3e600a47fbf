package textanalysis

// heuristicClassify is the offline fallback when no LLM provider is
// configured. It scores risk from surface statistics alone: reduced
// lexical diversity and very short sentences are the strongest
// transcript-level markers available without a language model.
func heuristicClassify(features LinguisticFeatures) *Result {
	markers := 0
	if features.LexicalDiversity > 0 && features.LexicalDiversity < 0.4 {
		markers++
	}
	if features.AvgWordsPerSentence > 0 && features.AvgWordsPerSentence < 6 {
		markers++
	}
	if features.WordCount < 30 {
		markers++
	}

	var risk RiskLevel
	switch {
	case markers >= 2:
		risk = RiskHigh
	case markers == 1:
		risk = RiskMedium
	default:
		risk = RiskLow
	}

	return &Result{
		RiskLevel:      risk,
		Confidence:     0.5,
		Features:       features,
		ClassifierName: "heuristic",
	}
}
