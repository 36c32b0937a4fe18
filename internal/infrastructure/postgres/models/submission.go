package models

import "time"

type SubmissionModel struct {
	ID                         int64             `gorm:"primaryKey;autoIncrement"`
	ParticipantKey             int64             `gorm:"not null;index:idx_submissions_participant_created"`
	Participant                *ParticipantModel `gorm:"foreignKey:ParticipantKey;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ImageID                    string            `gorm:"size:255;not null"`
	Description                string            `gorm:"type:text;not null"`
	WordCount                  int               `gorm:"not null"`
	Rating                     int               `gorm:"not null;check:chk_submissions_rating,rating >= 1 AND rating <= 10"`
	Feedback                   string            `gorm:"type:text"`
	TimeSpentSeconds           *float64
	IsSurvey                   bool              `gorm:"not null"`
	IsPractice                 bool              `gorm:"not null;default:false"`
	IsAttention                bool              `gorm:"not null"`
	AttentionPassed            *bool
	TooFastFlag                bool              `gorm:"not null"`
	AttentionScoreAtSubmission *float64
	QualityScore               float64           `gorm:"not null"`
	SessionID                  string            `gorm:"size:128"`
	UserAgent                  string
	IPHash                     string            `gorm:"size:64"`
	NasaMental                 *int
	NasaPhysical               *int
	NasaTemporal               *int
	NasaPerformance            *int
	NasaEffort                 *int
	NasaFrustration            *int
	CreatedAt                  time.Time         `gorm:"index:idx_submissions_participant_created"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}
