package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultParticipantRepository struct {
	DB *gorm.DB
}

func NewDefaultParticipantRepository(db *gorm.DB) *DefaultParticipantRepository {
	return &DefaultParticipantRepository{DB: db}
}

func (r *DefaultParticipantRepository) CreateParticipant(ctx context.Context, participant *domain.Participant) error {
	model := mappers.ToGORMParticipant(participant)
	if model.PaymentStatus == "" {
		model.PaymentStatus = domain.PaymentStatusNone
	}
	if err := postgres.Conn(ctx, r.DB).Create(model).Error; err != nil {
		return fmt.Errorf("create participant %q: %w", participant.ExternalID, translateError(err))
	}

	participant.ID = model.ID
	participant.PaymentStatus = model.PaymentStatus
	participant.CreatedAt = model.CreatedAt
	return nil
}

func (r *DefaultParticipantRepository) GetParticipantByExternalID(ctx context.Context, externalID string) (*domain.Participant, error) {
	var model models.ParticipantModel
	if err := postgres.Conn(ctx, r.DB).First(&model, "external_id = ?", externalID).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainParticipant(&model), nil
}

func (r *DefaultParticipantRepository) LockParticipantByExternalID(ctx context.Context, externalID string) (*domain.Participant, error) {
	var model models.ParticipantModel
	if err := postgres.Conn(ctx, r.DB).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "external_id = ?", externalID).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainParticipant(&model), nil
}

func (r *DefaultParticipantRepository) UpdateConsent(ctx context.Context, participantKey int64, consent bool, at time.Time) error {
	var consentAt interface{}
	if consent {
		consentAt = at
	}
	updates := map[string]interface{}{
		"consent_given": consent,
		"consent_at":    consentAt,
		"updated_at":    at,
	}
	res := postgres.Conn(ctx, r.DB).
		Model(&models.ParticipantModel{}).
		Where("id = ?", participantKey).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultParticipantRepository) UpdatePaymentStatus(ctx context.Context, participantKey int64, status domain.PaymentStatus) error {
	res := postgres.Conn(ctx, r.DB).
		Model(&models.ParticipantModel{}).
		Where("id = ?", participantKey).
		Updates(map[string]interface{}{
			"payment_status": status,
			"updated_at":     time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
