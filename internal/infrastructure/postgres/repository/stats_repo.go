package repository

import (
	"context"
	"errors"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultStatsRepository struct {
	DB *gorm.DB
}

func NewDefaultStatsRepository(db *gorm.DB) *DefaultStatsRepository {
	return &DefaultStatsRepository{DB: db}
}

var participantKeyConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "participant_key"}},
	DoNothing: true,
}

// GetAttentionStats returns a fresh, unflagged record for participants
// without attention history.
func (r *DefaultStatsRepository) GetAttentionStats(ctx context.Context, participantKey int64) (*domain.AttentionStats, error) {
	var model models.AttentionStatsModel
	err := postgres.Conn(ctx, r.DB).Where("participant_key = ?", participantKey).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.AttentionStats{
			ParticipantKey: participantKey,
			AttentionScore: domain.DefaultAttentionScore,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainAttentionStats(&model), nil
}

func (r *DefaultStatsRepository) LockAttentionStats(ctx context.Context, participantKey int64) (*domain.AttentionStats, error) {
	db := postgres.Conn(ctx, r.DB)

	seed := models.AttentionStatsModel{
		ParticipantKey: participantKey,
		AttentionScore: domain.DefaultAttentionScore,
		UpdatedAt:      time.Now().UTC(),
	}
	if err := db.Clauses(participantKeyConflict).Create(&seed).Error; err != nil {
		return nil, translateError(err)
	}

	var model models.AttentionStatsModel
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("participant_key = ?", participantKey).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainAttentionStats(&model), nil
}

func (r *DefaultStatsRepository) SaveAttentionStats(ctx context.Context, stats *domain.AttentionStats) error {
	return postgres.Conn(ctx, r.DB).
		Model(&models.AttentionStatsModel{}).
		Where("participant_key = ?", stats.ParticipantKey).
		Updates(map[string]interface{}{
			"total_checks":    stats.TotalChecks,
			"passed_checks":   stats.PassedChecks,
			"failed_checks":   stats.FailedChecks,
			"attention_score": stats.AttentionScore,
			"is_flagged":      stats.IsFlagged,
			"updated_at":      stats.UpdatedAt,
		}).Error
}

// GetParticipantStats returns zeroed counters with full attention trust for
// participants without any submission.
func (r *DefaultStatsRepository) GetParticipantStats(ctx context.Context, participantKey int64) (*domain.ParticipantStats, error) {
	var model models.ParticipantStatsModel
	err := postgres.Conn(ctx, r.DB).Where("participant_key = ?", participantKey).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.ParticipantStats{
			ParticipantKey: participantKey,
			AttentionScore: domain.DefaultAttentionScore,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainParticipantStats(&model), nil
}

func (r *DefaultStatsRepository) LockParticipantStats(ctx context.Context, participantKey int64) (*domain.ParticipantStats, error) {
	db := postgres.Conn(ctx, r.DB)

	seed := models.ParticipantStatsModel{
		ParticipantKey: participantKey,
		AttentionScore: domain.DefaultAttentionScore,
		UpdatedAt:      time.Now().UTC(),
	}
	if err := db.Clauses(participantKeyConflict).Create(&seed).Error; err != nil {
		return nil, translateError(err)
	}

	var model models.ParticipantStatsModel
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("participant_key = ?", participantKey).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainParticipantStats(&model), nil
}

func (r *DefaultStatsRepository) SaveParticipantStats(ctx context.Context, stats *domain.ParticipantStats) error {
	return postgres.Conn(ctx, r.DB).
		Model(&models.ParticipantStatsModel{}).
		Where("participant_key = ?", stats.ParticipantKey).
		Updates(map[string]interface{}{
			"total_words":       stats.TotalWords,
			"total_submissions": stats.TotalSubmissions,
			"survey_rounds":     stats.SurveyRounds,
			"priority_eligible": stats.PriorityEligible,
			"attention_score":   stats.AttentionScore,
			"updated_at":        stats.UpdatedAt,
		}).Error
}

func (r *DefaultStatsRepository) StampRewardAttempt(ctx context.Context, participantKey int64, at time.Time) error {
	return postgres.Conn(ctx, r.DB).
		Model(&models.ParticipantStatsModel{}).
		Where("participant_key = ?", participantKey).
		Updates(map[string]interface{}{
			"last_reward_attempt_at": at,
			"updated_at":             at,
		}).Error
}
