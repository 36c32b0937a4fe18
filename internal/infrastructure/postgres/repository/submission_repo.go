package repository

import (
	"context"
	"fmt"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

const exportBatchSize = 500

type DefaultSubmissionRepository struct {
	DB *gorm.DB
}

func NewDefaultSubmissionRepository(db *gorm.DB) *DefaultSubmissionRepository {
	return &DefaultSubmissionRepository{DB: db}
}

func (r *DefaultSubmissionRepository) CreateSubmission(ctx context.Context, submission *domain.Submission) error {
	model := mappers.ToGORMSubmission(submission)
	if err := postgres.Conn(ctx, r.DB).Create(model).Error; err != nil {
		return fmt.Errorf("insert submission: %w", translateError(err))
	}
	submission.ID = model.ID
	submission.CreatedAt = model.CreatedAt
	return nil
}

func (r *DefaultSubmissionRepository) GetSubmissionsByParticipant(ctx context.Context, participantKey int64) ([]*domain.Submission, error) {
	var submissionModels []models.SubmissionModel
	if err := postgres.Conn(ctx, r.DB).
		Where("participant_key = ?", participantKey).
		Order("created_at DESC, id DESC").
		Find(&submissionModels).Error; err != nil {
		return nil, err
	}

	submissions := make([]*domain.Submission, len(submissionModels))
	for i := range submissionModels {
		submissions[i] = mappers.ToDomainSubmission(&submissionModels[i])
	}
	return submissions, nil
}

func (r *DefaultSubmissionRepository) GetSubmissionSummary(ctx context.Context) (*domain.SubmissionSummary, error) {
	type summaryRow struct {
		TotalSubmissions  int64
		TotalWords        int64
		AttentionTotal    int64
		AttentionFailures int64
	}

	var row summaryRow
	err := postgres.Conn(ctx, r.DB).
		Model(&models.SubmissionModel{}).
		Select(`COUNT(*) AS total_submissions,
			COALESCE(SUM(word_count), 0) AS total_words,
			COALESCE(SUM(CASE WHEN is_attention = ? THEN 1 ELSE 0 END), 0) AS attention_total,
			COALESCE(SUM(CASE WHEN is_attention = ? AND (attention_passed IS NULL OR attention_passed = ?) THEN 1 ELSE 0 END), 0) AS attention_failures`,
			true, true, false).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("submission summary: %w", err)
	}

	return &domain.SubmissionSummary{
		TotalSubmissions:  row.TotalSubmissions,
		TotalWords:        row.TotalWords,
		AttentionTotal:    row.AttentionTotal,
		AttentionFailures: row.AttentionFailures,
	}, nil
}

// ExportSubmissions reads in primary-key batches so memory stays bounded no
// matter how large the table grows.
func (r *DefaultSubmissionRepository) ExportSubmissions(ctx context.Context, fn func(participantID string, submission *domain.Submission) error) error {
	var batch []models.SubmissionModel
	res := postgres.Conn(ctx, r.DB).
		Preload("Participant").
		FindInBatches(&batch, exportBatchSize, func(tx *gorm.DB, _ int) error {
			for i := range batch {
				var participantID string
				if batch[i].Participant != nil {
					participantID = batch[i].Participant.ExternalID
				}
				if err := fn(participantID, mappers.ToDomainSubmission(&batch[i])); err != nil {
					return err
				}
			}
			return nil
		})
	if res.Error != nil {
		return fmt.Errorf("export submissions: %w", res.Error)
	}
	return nil
}
