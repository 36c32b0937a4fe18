package mappers

import (
	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
)

func ToDomainRewardWinner(model *models.RewardWinnerModel) *domain.RewardWinner {
	return &domain.RewardWinner{
		ID:             model.ID,
		ParticipantKey: model.ParticipantKey,
		RewardAmount:   model.RewardAmount,
		Status:         model.Status,
		SelectedAt:     model.SelectedAt,
	}
}
