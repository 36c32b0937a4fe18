package usecase

import (
	"testing"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAdmit(t *testing.T) {
	flagged := &domain.AttentionStats{IsFlagged: true}
	clean := &domain.AttentionStats{}

	tests := []struct {
		name        string
		participant *domain.Participant
		stats       *domain.AttentionStats
		want        error
	}{
		{"missing participant", nil, clean, domain.ErrNotFound},
		{"flagged beats payment and consent", &domain.Participant{PaymentStatus: domain.PaymentStatusPaid, ConsentGiven: true}, flagged, domain.ErrFlagged},
		{"flagged even when unpaid", &domain.Participant{PaymentStatus: domain.PaymentStatusNone}, flagged, domain.ErrFlagged},
		{"payment before consent", &domain.Participant{PaymentStatus: domain.PaymentStatusCreated}, clean, domain.ErrPaymentRequired},
		{"consent required", &domain.Participant{PaymentStatus: domain.PaymentStatusPaid}, clean, domain.ErrConsentRequired},
		{"admitted", &domain.Participant{PaymentStatus: domain.PaymentStatusPaid, ConsentGiven: true}, clean, nil},
		{"admitted without stats", &domain.Participant{PaymentStatus: domain.PaymentStatusPaid, ConsentGiven: true}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Admit(tt.participant, tt.stats)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
