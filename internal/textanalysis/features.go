package textanalysis

import (
	"math"
	"strings"
	"unicode"
)

// ExtractFeatures computes surface linguistic statistics for a sample.
// Words are whitespace-separated tokens with surrounding punctuation
// stripped; sentences are terminated by runs of . ! or ?.
func ExtractFeatures(text string) LinguisticFeatures {
	var f LinguisticFeatures

	words := 0
	seen := map[string]struct{}{}
	alphaTokens := 0

	for _, tok := range strings.Fields(text) {
		w := strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if w == "" {
			continue
		}
		words++

		if isAlpha(w) {
			alphaTokens++
			seen[strings.ToLower(w)] = struct{}{}
		}
	}
	f.WordCount = words

	f.SentenceCount = countSentences(text)

	if f.SentenceCount > 0 {
		f.AvgWordsPerSentence = round2(float64(f.WordCount) / float64(f.SentenceCount))
	}
	if alphaTokens > 0 {
		f.LexicalDiversity = round3(float64(len(seen)) / float64(alphaTokens))
	}

	return f
}

// countSentences counts maximal runs of sentence terminators; trailing
// text without a terminator still counts as a sentence.
func countSentences(text string) int {
	count := 0
	inTerminator := false
	sawContent := false

	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			if !inTerminator && sawContent {
				count++
			}
			inTerminator = true
			sawContent = false
		case unicode.IsSpace(r):
			inTerminator = false
		default:
			inTerminator = false
			sawContent = true
		}
	}
	if sawContent {
		count++
	}
	return count
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
