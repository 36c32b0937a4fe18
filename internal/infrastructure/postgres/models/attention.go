package models

import "time"

type AttentionCheckModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	ImageID      string `gorm:"size:255;not null;uniqueIndex:idx_attention_checks_image_id"`
	ExpectedTerm string `gorm:"size:255;not null"`
	Strict       bool   `gorm:"not null"`
	IsActive     bool   `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AttentionCheckModel) TableName() string {
	return "attention_checks"
}

type AttentionStatsModel struct {
	ID             int64             `gorm:"primaryKey;autoIncrement"`
	ParticipantKey int64             `gorm:"not null;uniqueIndex:idx_attention_stats_participant"`
	Participant    *ParticipantModel `gorm:"foreignKey:ParticipantKey;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TotalChecks    int64             `gorm:"not null"`
	PassedChecks   int64             `gorm:"not null"`
	FailedChecks   int64             `gorm:"not null"`
	AttentionScore float64           `gorm:"not null"`
	IsFlagged      bool              `gorm:"not null;index"`
	UpdatedAt      time.Time
}

func (AttentionStatsModel) TableName() string {
	return "attention_stats"
}
