package repository

import (
	"context"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultAttentionCheckRepository struct {
	DB *gorm.DB
}

func NewDefaultAttentionCheckRepository(db *gorm.DB) *DefaultAttentionCheckRepository {
	return &DefaultAttentionCheckRepository{DB: db}
}

// GetActiveAttentionCheck returns domain.ErrNotFound when the image is not an
// active attention check.
func (r *DefaultAttentionCheckRepository) GetActiveAttentionCheck(ctx context.Context, imageID string) (*domain.AttentionCheck, error) {
	var model models.AttentionCheckModel
	if err := postgres.Conn(ctx, r.DB).
		Where("image_id = ? AND is_active = ?", imageID, true).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainAttentionCheck(&model), nil
}

func (r *DefaultAttentionCheckRepository) UpsertAttentionCheck(ctx context.Context, check *domain.AttentionCheck) error {
	now := time.Now().UTC()
	model := models.AttentionCheckModel{
		ImageID:      check.ImageID,
		ExpectedTerm: check.ExpectedTerm,
		Strict:       check.Strict,
		IsActive:     check.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := postgres.Conn(ctx, r.DB).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "image_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"expected_term", "strict", "is_active", "updated_at"}),
	}).Create(&model).Error
	return translateError(err)
}
