package usecase

import (
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
)

// ApplyAttentionResult records one attention-check outcome and recomputes the
// derived score and flag.
func ApplyAttentionResult(stats *domain.AttentionStats, passed bool, now time.Time) {
	stats.TotalChecks++
	if passed {
		stats.PassedChecks++
	} else {
		stats.FailedChecks++
	}
	stats.AttentionScore = attentionScore(stats.PassedChecks, stats.TotalChecks)
	stats.IsFlagged = isFlagged(stats.AttentionScore, stats.TotalChecks)
	stats.UpdatedAt = now
}

type SubmissionContribution struct {
	WordCount int
	IsSurvey  bool
	// FreshAttentionScore is set only when the submission was an attention
	// check; otherwise the stored score is carried forward.
	FreshAttentionScore *float64
}

func ApplySubmission(stats *domain.ParticipantStats, c SubmissionContribution, now time.Time) {
	stats.TotalWords += int64(c.WordCount)
	stats.TotalSubmissions++
	if c.IsSurvey {
		stats.SurveyRounds++
	}
	if c.FreshAttentionScore != nil {
		stats.AttentionScore = *c.FreshAttentionScore
	}
	stats.PriorityEligible = isPriorityEligible(stats.TotalWords, stats.SurveyRounds, stats.AttentionScore)
	stats.UpdatedAt = now
}

func attentionScore(passed, total int64) float64 {
	if total == 0 {
		return domain.DefaultAttentionScore
	}
	return float64(passed) / float64(total)
}

func isFlagged(score float64, totalChecks int64) bool {
	return score < domain.FlagScoreThreshold && totalChecks >= domain.FlagMinChecks
}

func isPriorityEligible(totalWords, surveyRounds int64, score float64) bool {
	engaged := totalWords >= domain.PriorityMinWords || surveyRounds >= domain.PriorityMinSurveyRounds
	return engaged && score >= domain.PriorityMinAttention
}
