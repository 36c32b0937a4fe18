package domain

import (
	"context"
	"time"
)

type AuditAction string

const (
	AuditConsentRecorded    AuditAction = "consent_recorded"
	AuditSubmissionAccepted AuditAction = "submission_accepted"
	AuditParticipantFlagged AuditAction = "participant_flagged"
	AuditRewardSelected     AuditAction = "reward_selected"
	AuditPaymentPaid        AuditAction = "payment_paid"
)

type AuditEntry struct {
	ParticipantKey *int64
	Action         AuditAction
	Details        string
	CreatedAt      time.Time
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditEntry) error
}
