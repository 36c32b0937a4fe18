package models

import "time"

type ParticipantStatsModel struct {
	ID                  int64             `gorm:"primaryKey;autoIncrement"`
	ParticipantKey      int64             `gorm:"not null;uniqueIndex:idx_participant_stats_participant"`
	Participant         *ParticipantModel `gorm:"foreignKey:ParticipantKey;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TotalWords          int64             `gorm:"not null"`
	TotalSubmissions    int64             `gorm:"not null"`
	SurveyRounds        int64             `gorm:"not null"`
	PriorityEligible    bool              `gorm:"not null"`
	AttentionScore      float64           `gorm:"not null"`
	LastRewardAttemptAt *time.Time
	UpdatedAt           time.Time
}

func (ParticipantStatsModel) TableName() string {
	return "participant_stats"
}
