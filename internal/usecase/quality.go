package usecase

import (
	"math"
	"unicode/utf8"
)

const (
	qualityWordTarget     = 150
	qualityFeedbackTarget = 50

	qualityWordWeight      = 0.4
	qualityAttentionWeight = 0.3
	qualityTimeWeight      = 0.2
	qualityFeedbackWeight  = 0.1

	tooFastTimeScore = 0.5
)

type QualitySignals struct {
	WordCount       int
	AttentionPassed *bool
	TooFast         bool
	Feedback        string
}

// ScoreQuality maps the raw signals of one submission to a score in [0, 1],
// rounded to three decimals.
func ScoreQuality(signals QualitySignals) float64 {
	wordScore := clamp01(float64(signals.WordCount) / qualityWordTarget)

	attentionScore := 1.0
	if signals.AttentionPassed != nil && !*signals.AttentionPassed {
		attentionScore = 0.0
	}

	timeScore := 1.0
	if signals.TooFast {
		timeScore = tooFastTimeScore
	}

	feedbackScore := clamp01(float64(utf8.RuneCountInString(signals.Feedback)) / qualityFeedbackTarget)

	score := wordScore*qualityWordWeight +
		attentionScore*qualityAttentionWeight +
		timeScore*qualityTimeWeight +
		feedbackScore*qualityFeedbackWeight

	return math.Round(clamp01(score)*1000) / 1000
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
