package domain

import (
	"context"
	"time"
)

const (
	PriorityMinWords        = 500
	PriorityMinSurveyRounds = 3
	PriorityMinAttention    = 0.75
	DefaultAttentionScore   = 1.0
)

type ParticipantStats struct {
	ParticipantKey      int64
	TotalWords          int64
	TotalSubmissions    int64
	SurveyRounds        int64
	PriorityEligible    bool
	AttentionScore      float64
	LastRewardAttemptAt *time.Time
	UpdatedAt           time.Time
}

// StatsRepository persists the per-participant counters. The Lock* methods
// materialize a default row when none exists and hold a row lock on it until
// the surrounding transaction ends.
type StatsRepository interface {
	GetAttentionStats(ctx context.Context, participantKey int64) (*AttentionStats, error)
	LockAttentionStats(ctx context.Context, participantKey int64) (*AttentionStats, error)
	SaveAttentionStats(ctx context.Context, stats *AttentionStats) error

	GetParticipantStats(ctx context.Context, participantKey int64) (*ParticipantStats, error)
	LockParticipantStats(ctx context.Context, participantKey int64) (*ParticipantStats, error)
	SaveParticipantStats(ctx context.Context, stats *ParticipantStats) error
	StampRewardAttempt(ctx context.Context, participantKey int64, at time.Time) error
}
