package models

import (
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
)

type ParticipantModel struct {
	ID              int64                `gorm:"primaryKey;autoIncrement"`
	ExternalID      string               `gorm:"size:128;not null;uniqueIndex:idx_participants_external_id"`
	SessionID       string               `gorm:"size:128"`
	Username        string               `gorm:"size:128"`
	Gender          string               `gorm:"size:32"`
	Age             int
	Place           string               `gorm:"size:128"`
	NativeLanguage  string               `gorm:"size:64"`
	PriorExperience string
	ConsentGiven    bool                 `gorm:"not null"`
	ConsentAt       *time.Time
	PaymentStatus   domain.PaymentStatus `gorm:"size:16;not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ParticipantModel) TableName() string {
	return "participants"
}
