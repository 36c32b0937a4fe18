package mappers

import (
	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
)

func ToDomainAttentionCheck(model *models.AttentionCheckModel) *domain.AttentionCheck {
	return &domain.AttentionCheck{
		ID:           model.ID,
		ImageID:      model.ImageID,
		ExpectedTerm: model.ExpectedTerm,
		Strict:       model.Strict,
		IsActive:     model.IsActive,
	}
}

func ToDomainAttentionStats(model *models.AttentionStatsModel) *domain.AttentionStats {
	return &domain.AttentionStats{
		ParticipantKey: model.ParticipantKey,
		TotalChecks:    model.TotalChecks,
		PassedChecks:   model.PassedChecks,
		FailedChecks:   model.FailedChecks,
		AttentionScore: model.AttentionScore,
		IsFlagged:      model.IsFlagged,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToDomainParticipantStats(model *models.ParticipantStatsModel) *domain.ParticipantStats {
	return &domain.ParticipantStats{
		ParticipantKey:      model.ParticipantKey,
		TotalWords:          model.TotalWords,
		TotalSubmissions:    model.TotalSubmissions,
		SurveyRounds:        model.SurveyRounds,
		PriorityEligible:    model.PriorityEligible,
		AttentionScore:      model.AttentionScore,
		LastRewardAttemptAt: model.LastRewardAttemptAt,
		UpdatedAt:           model.UpdatedAt,
	}
}
