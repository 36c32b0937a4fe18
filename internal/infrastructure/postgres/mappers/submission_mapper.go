package mappers

import (
	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
)

func ToGORMSubmission(submission *domain.Submission) *models.SubmissionModel {
	return &models.SubmissionModel{
		ID:                         submission.ID,
		ParticipantKey:             submission.ParticipantKey,
		ImageID:                    submission.ImageID,
		Description:                submission.Description,
		WordCount:                  submission.WordCount,
		Rating:                     submission.Rating,
		Feedback:                   submission.Feedback,
		TimeSpentSeconds:           submission.TimeSpentSeconds,
		IsSurvey:                   submission.IsSurvey,
		IsPractice:                 submission.IsPractice,
		IsAttention:                submission.IsAttention,
		AttentionPassed:            submission.AttentionPassed,
		TooFastFlag:                submission.TooFastFlag,
		AttentionScoreAtSubmission: submission.AttentionScoreAtSubmission,
		QualityScore:               submission.QualityScore,
		SessionID:                  submission.SessionID,
		UserAgent:                  submission.UserAgent,
		IPHash:                     submission.IPHash,
		NasaMental:                 submission.Workload.Mental,
		NasaPhysical:               submission.Workload.Physical,
		NasaTemporal:               submission.Workload.Temporal,
		NasaPerformance:            submission.Workload.Performance,
		NasaEffort:                 submission.Workload.Effort,
		NasaFrustration:            submission.Workload.Frustration,
		CreatedAt:                  submission.CreatedAt,
	}
}

func ToDomainSubmission(model *models.SubmissionModel) *domain.Submission {
	return &domain.Submission{
		ID:                         model.ID,
		ParticipantKey:             model.ParticipantKey,
		ImageID:                    model.ImageID,
		Description:                model.Description,
		WordCount:                  model.WordCount,
		Rating:                     model.Rating,
		Feedback:                   model.Feedback,
		TimeSpentSeconds:           model.TimeSpentSeconds,
		IsSurvey:                   model.IsSurvey,
		IsPractice:                 model.IsPractice,
		IsAttention:                model.IsAttention,
		AttentionPassed:            model.AttentionPassed,
		TooFastFlag:                model.TooFastFlag,
		AttentionScoreAtSubmission: model.AttentionScoreAtSubmission,
		QualityScore:               model.QualityScore,
		SessionID:                  model.SessionID,
		UserAgent:                  model.UserAgent,
		IPHash:                     model.IPHash,
		Workload: domain.WorkloadRatings{
			Mental:      model.NasaMental,
			Physical:    model.NasaPhysical,
			Temporal:    model.NasaTemporal,
			Performance: model.NasaPerformance,
			Effort:      model.NasaEffort,
			Frustration: model.NasaFrustration,
		},
		CreatedAt:                  model.CreatedAt,
	}
}
