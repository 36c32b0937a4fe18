package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	participantdto "github.com/LavaJover/cognit-service/internal/usecase/dto/participant"
	"go.uber.org/zap"
)

type ParticipantUsecase interface {
	Register(ctx context.Context, input *participantdto.RegisterInput) (*domain.Participant, error)
	GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error)
	RecordConsent(ctx context.Context, input *participantdto.ConsentInput) (*domain.Participant, error)
}

type DefaultParticipantUsecase struct {
	TxManager       domain.TxManager
	ParticipantRepo domain.ParticipantRepository
	Audit           domain.AuditLogger
	log             *zap.Logger
	now             func() time.Time
}

func NewDefaultParticipantUsecase(
	txManager domain.TxManager,
	participantRepo domain.ParticipantRepository,
	audit domain.AuditLogger,
	log *zap.Logger,
) *DefaultParticipantUsecase {
	return &DefaultParticipantUsecase{
		TxManager:       txManager,
		ParticipantRepo: participantRepo,
		Audit:           audit,
		log:             log,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (uc *DefaultParticipantUsecase) Register(ctx context.Context, input *participantdto.RegisterInput) (*domain.Participant, error) {
	if input == nil || strings.TrimSpace(input.ParticipantID) == "" {
		return nil, fmt.Errorf("%w: participant_id is required", domain.ErrValidation)
	}
	if input.Age < 0 {
		return nil, fmt.Errorf("%w: age must not be negative", domain.ErrValidation)
	}

	participant := &domain.Participant{
		ExternalID:      strings.TrimSpace(input.ParticipantID),
		SessionID:       input.SessionID,
		Username:        input.Username,
		Gender:          input.Gender,
		Age:             input.Age,
		Place:           input.Place,
		NativeLanguage:  input.NativeLanguage,
		PriorExperience: input.PriorExperience,
		PaymentStatus:   domain.PaymentStatusNone,
		CreatedAt:       uc.now(),
	}
	if err := uc.ParticipantRepo.CreateParticipant(ctx, participant); err != nil {
		return nil, err
	}

	uc.log.Info("participant registered", zap.String("participant_id", participant.ExternalID))
	return participant, nil
}

func (uc *DefaultParticipantUsecase) GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	return uc.ParticipantRepo.GetParticipantByExternalID(ctx, participantID)
}

// RecordConsent stores the participant's decision. Withdrawing consent clears
// consent_at.
func (uc *DefaultParticipantUsecase) RecordConsent(ctx context.Context, input *participantdto.ConsentInput) (*domain.Participant, error) {
	if input == nil || strings.TrimSpace(input.ParticipantID) == "" {
		return nil, fmt.Errorf("%w: participant_id is required", domain.ErrValidation)
	}

	var participant *domain.Participant
	err := uc.TxManager.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := uc.ParticipantRepo.LockParticipantByExternalID(ctx, input.ParticipantID)
		if err != nil {
			return err
		}

		now := uc.now()
		if err := uc.ParticipantRepo.UpdateConsent(ctx, p.ID, input.ConsentGiven, now); err != nil {
			return err
		}
		p.ConsentGiven = input.ConsentGiven
		p.ConsentAt = nil
		if input.ConsentGiven {
			p.ConsentAt = &now
		}

		key := p.ID
		participant = p
		return uc.Audit.Log(ctx, domain.AuditEntry{
			ParticipantKey: &key,
			Action:         domain.AuditConsentRecorded,
			Details:        fmt.Sprintf("consent_given=%t", input.ConsentGiven),
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}
	return participant, nil
}
