package repository

import (
	"context"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRewardRepository struct {
	DB *gorm.DB
}

func NewDefaultRewardRepository(db *gorm.DB) *DefaultRewardRepository {
	return &DefaultRewardRepository{DB: db}
}

func (r *DefaultRewardRepository) GetWinner(ctx context.Context, participantKey int64) (*domain.RewardWinner, error) {
	var model models.RewardWinnerModel
	if err := postgres.Conn(ctx, r.DB).Where("participant_key = ?", participantKey).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainRewardWinner(&model), nil
}

func (r *DefaultRewardRepository) CreateWinner(ctx context.Context, winner *domain.RewardWinner) (bool, error) {
	model := models.RewardWinnerModel{
		ParticipantKey: winner.ParticipantKey,
		RewardAmount:   winner.RewardAmount,
		Status:         winner.Status,
		SelectedAt:     winner.SelectedAt,
	}
	res := postgres.Conn(ctx, r.DB).Clauses(participantKeyConflict).Create(&model)
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	winner.ID = model.ID
	return true, nil
}
