package domain

import (
	"context"
	"time"
)

type RewardStatus string

const (
	RewardStatusPending RewardStatus = "pending"
	RewardStatusPaid    RewardStatus = "paid"
)

type RewardWinner struct {
	ID             int64
	ParticipantKey int64
	RewardAmount   float64
	Status         RewardStatus
	SelectedAt     time.Time
}

type RewardRepository interface {
	GetWinner(ctx context.Context, participantKey int64) (*RewardWinner, error)
	// CreateWinner inserts the winner row unless one already exists for the
	// participant. It reports whether a row was inserted.
	CreateWinner(ctx context.Context, winner *RewardWinner) (bool, error)
}
