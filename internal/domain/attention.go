package domain

import (
	"context"
	"time"
)

const (
	FlagScoreThreshold = 0.6
	FlagMinChecks      = 3
)

// AttentionCheck is a catalog entry describing a decoy image and the term a
// careful participant is expected to mention.
type AttentionCheck struct {
	ID           int64
	ImageID      string
	ExpectedTerm string
	Strict       bool
	IsActive     bool
}

type AttentionStats struct {
	ParticipantKey int64
	TotalChecks    int64
	PassedChecks   int64
	FailedChecks   int64
	AttentionScore float64
	IsFlagged      bool
	UpdatedAt      time.Time
}

type AttentionCheckRepository interface {
	GetActiveAttentionCheck(ctx context.Context, imageID string) (*AttentionCheck, error)
	UpsertAttentionCheck(ctx context.Context, check *AttentionCheck) error
}
