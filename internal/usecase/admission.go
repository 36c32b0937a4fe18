package usecase

import "github.com/LavaJover/cognit-service/internal/domain"

// Admit decides whether the participant may submit. The flag check comes
// first so banned participants stay blocked after paying or consenting, and
// payment is checked before consent.
func Admit(participant *domain.Participant, stats *domain.AttentionStats) error {
	if participant == nil {
		return domain.ErrNotFound
	}
	if stats != nil && stats.IsFlagged {
		return domain.ErrFlagged
	}
	if participant.PaymentStatus != domain.PaymentStatusPaid {
		return domain.ErrPaymentRequired
	}
	if !participant.ConsentGiven {
		return domain.ErrConsentRequired
	}
	return nil
}
