package domain

import (
	"context"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusNone    PaymentStatus = "none"
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type Participant struct {
	ID              int64
	ExternalID      string
	SessionID       string
	Username        string
	Gender          string
	Age             int
	Place           string
	NativeLanguage  string
	PriorExperience string
	ConsentGiven    bool
	ConsentAt       *time.Time
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
}

type ParticipantRepository interface {
	CreateParticipant(ctx context.Context, participant *Participant) error
	GetParticipantByExternalID(ctx context.Context, externalID string) (*Participant, error)
	// LockParticipantByExternalID reads the participant row with a row lock held until the
	// surrounding transaction ends.
	LockParticipantByExternalID(ctx context.Context, externalID string) (*Participant, error)
	UpdateConsent(ctx context.Context, participantKey int64, consent bool, at time.Time) error
	UpdatePaymentStatus(ctx context.Context, participantKey int64, status PaymentStatus) error
}
