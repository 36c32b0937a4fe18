package models

import (
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
)

// RewardWinnerModel carries the unique index that makes the database the
// final arbiter of "at most one win per participant".
type RewardWinnerModel struct {
	ID             int64               `gorm:"primaryKey;autoIncrement"`
	ParticipantKey int64               `gorm:"not null;uniqueIndex:idx_reward_winners_participant"`
	Participant    *ParticipantModel   `gorm:"foreignKey:ParticipantKey;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	RewardAmount   float64             `gorm:"not null"`
	Status         domain.RewardStatus `gorm:"size:16;not null"`
	SelectedAt     time.Time           `gorm:"not null"`
}

func (RewardWinnerModel) TableName() string {
	return "reward_winners"
}
