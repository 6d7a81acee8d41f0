// Package sentiment provides a small, deterministic, dependency-free polarity
// scorer for free-text feedback. It is intentionally simple:
//
//   - No logging in the library (callers decide how/what to log)
//   - Unicode-aware tokenization shared with the chatbot matching rules
//   - Deterministic output: the same text always scores the same
//   - Scores are clamped to [-1, 1]; empty or unknown text scores 0
//
// Scoring averages per-token polarity from a fixed lexicon. A token preceded
// by a negator ("not", "never", "no", "don't", ...) contributes with flipped
// sign, so "not happy" leans negative while "happy" leans positive.
package sentiment

import (
	"strings"
	"unicode"
)

// lexicon maps lower-cased tokens to a polarity contribution in [-1, 1].
// The vocabulary is tuned for workplace feedback text.
var lexicon = map[string]float64{
	// positive
	"good": 0.7, "great": 0.8, "excellent": 1.0, "amazing": 0.9,
	"happy": 0.8, "love": 0.9, "like": 0.4, "enjoy": 0.7, "enjoyable": 0.7,
	"satisfied": 0.7, "satisfying": 0.7, "helpful": 0.6, "supportive": 0.7,
	"fair": 0.5, "best": 0.9, "better": 0.4, "positive": 0.6,
	"rewarding": 0.8, "balanced": 0.5, "friendly": 0.6, "growth": 0.5,

	// negative
	"bad": -0.7, "terrible": -1.0, "awful": -0.9, "horrible": -0.9,
	"hate": -0.9, "dislike": -0.6, "sad": -0.6, "angry": -0.7,
	"unhappy": -0.8, "stress": -0.6, "stressful": -0.7, "stressed": -0.7,
	"overworked": -0.7, "tired": -0.5, "exhausted": -0.7, "toxic": -0.9,
	"unfair": -0.7, "worst": -1.0, "worse": -0.5, "negative": -0.6,
	"boring": -0.5, "quit": -0.6, "leave": -0.3, "leaving": -0.5,
}

// negators flip the sign of the token that follows them.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "dont": {}, "don't": {},
	"cant": {}, "can't": {}, "wont": {}, "won't": {}, "isnt": {}, "isn't": {},
}

// Polarity returns a sentiment score in [-1, 1] for text. Empty text and
// text with no lexicon hits score 0 (neutral).
func Polarity(text string) float64 {
	toks := tokenize(text)
	if len(toks) == 0 {
		return 0
	}

	var sum float64
	hits := 0
	negate := false
	for _, tok := range toks {
		if _, ok := negators[tok]; ok {
			negate = true
			continue
		}
		if w, ok := lexicon[tok]; ok {
			if negate {
				w = -w
			}
			sum += w
			hits++
		}
		negate = false
	}
	if hits == 0 {
		return 0
	}
	return clamp(sum/float64(hits), -1, 1)
}

// tokenize lower-cases text and splits on anything that is not a letter,
// digit, or apostrophe, so contractions like "don't" survive as one token.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
