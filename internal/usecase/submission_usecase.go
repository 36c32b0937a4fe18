package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/LavaJover/cognit-service/internal/domain"
	publisher "github.com/LavaJover/cognit-service/internal/infrastructure/kafka"
	"github.com/LavaJover/cognit-service/internal/infrastructure/metrics"
	submissiondto "github.com/LavaJover/cognit-service/internal/usecase/dto/submission"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxFeedbackRunes    = 1000
	maxDescriptionRunes = 5000
	minRating           = 1
	maxRating           = 10
	minWorkloadRating   = 0
	maxWorkloadRating   = 100
)

type SubmissionUsecase interface {
	Submit(ctx context.Context, input *submissiondto.SubmitInput) (*submissiondto.SubmitOutput, error)
	GetParticipantSubmissions(ctx context.Context, participantID string) ([]*submissiondto.Submission, error)
	GetSummary(ctx context.Context) (*submissiondto.SummaryOutput, error)
	ExportSubmissions(ctx context.Context, w io.Writer) error
	UpsertAttentionCheck(ctx context.Context, input *submissiondto.UpsertAttentionCheckInput) error
}

type SubmissionPolicy struct {
	MinWordCount   int
	TooFastSeconds float64
	IPHashSalt     string
}

type DefaultSubmissionUsecase struct {
	TxManager       domain.TxManager
	ParticipantRepo domain.ParticipantRepository
	CheckRepo       domain.AttentionCheckRepository
	StatsRepo       domain.StatsRepository
	SubmissionRepo  domain.SubmissionRepository
	Audit           domain.AuditLogger
	Events          *EventSink
	Metrics         *metrics.EngineMetrics
	Policy          SubmissionPolicy
	log             *zap.Logger
	now             func() time.Time
}

func NewDefaultSubmissionUsecase(
	txManager domain.TxManager,
	participantRepo domain.ParticipantRepository,
	checkRepo domain.AttentionCheckRepository,
	statsRepo domain.StatsRepository,
	submissionRepo domain.SubmissionRepository,
	audit domain.AuditLogger,
	events *EventSink,
	engineMetrics *metrics.EngineMetrics,
	policy SubmissionPolicy,
	log *zap.Logger,
) *DefaultSubmissionUsecase {
	return &DefaultSubmissionUsecase{
		TxManager:       txManager,
		ParticipantRepo: participantRepo,
		CheckRepo:       checkRepo,
		StatsRepo:       statsRepo,
		SubmissionRepo:  submissionRepo,
		Audit:           audit,
		Events:          events,
		Metrics:         engineMetrics,
		Policy:          policy,
		log:             log,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// submitResult carries what the transaction produced to the post-commit
// metrics and events.
type submitResult struct {
	participant *domain.Participant
	submission  *domain.Submission
	flagged     *domain.AttentionStats
}

func (uc *DefaultSubmissionUsecase) Submit(ctx context.Context, input *submissiondto.SubmitInput) (*submissiondto.SubmitOutput, error) {
	started := time.Now()
	defer func() {
		uc.Metrics.SubmissionDuration.Observe(time.Since(started).Seconds())
	}()

	wordCount, err := uc.validate(input)
	if err != nil {
		uc.Metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	var res submitResult
	err = uc.TxManager.WithinTransaction(ctx, func(ctx context.Context) error {
		participant, err := uc.ParticipantRepo.GetParticipantByExternalID(ctx, input.ParticipantID)
		if err != nil {
			return err
		}
		// The row stays locked until commit, so a concurrent attention check
		// cannot flag the participant between the gate and the insert.
		attentionStats, err := uc.StatsRepo.LockAttentionStats(ctx, participant.ID)
		if err != nil {
			return err
		}
		if err := Admit(participant, attentionStats); err != nil {
			return err
		}
		res.participant = participant

		check, err := uc.CheckRepo.GetActiveAttentionCheck(ctx, input.ImageID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		isAttention, passed := EvaluateAttention(check, input.Description)
		tooFast := input.TimeSpentSeconds != nil && *input.TimeSpentSeconds < uc.Policy.TooFastSeconds

		now := uc.now()
		var freshScore *float64
		if isAttention {
			ApplyAttentionResult(attentionStats, *passed, now)
			if err := uc.StatsRepo.SaveAttentionStats(ctx, attentionStats); err != nil {
				return err
			}
			score := attentionStats.AttentionScore
			freshScore = &score
			// Admit already rejected flagged participants, so any flag here is new.
			if attentionStats.IsFlagged {
				res.flagged = attentionStats
			}
		}

		submission := &domain.Submission{
			ParticipantKey:   participant.ID,
			ImageID:          input.ImageID,
			Description:      input.Description,
			WordCount:        wordCount,
			Rating:           input.Rating,
			Feedback:         input.Feedback,
			TimeSpentSeconds: input.TimeSpentSeconds,
			IsSurvey:         input.IsSurvey,
			IsPractice:       input.IsPractice,
			IsAttention:      isAttention,
			AttentionPassed:  passed,
			TooFastFlag:      tooFast,
			QualityScore: ScoreQuality(QualitySignals{
				WordCount:       wordCount,
				AttentionPassed: passed,
				TooFast:         tooFast,
				Feedback:        input.Feedback,
			}),
			AttentionScoreAtSubmission: freshScore,
			SessionID:                  input.SessionID,
			UserAgent:                  input.UserAgent,
			IPHash:                     uc.hashIP(input.ClientIP),
			Workload:                   input.Workload,
			CreatedAt:                  now,
		}
		if err := uc.SubmissionRepo.CreateSubmission(ctx, submission); err != nil {
			return err
		}
		res.submission = submission

		participantStats, err := uc.StatsRepo.LockParticipantStats(ctx, participant.ID)
		if err != nil {
			return err
		}
		ApplySubmission(participantStats, SubmissionContribution{
			WordCount:           wordCount,
			IsSurvey:            input.IsSurvey,
			FreshAttentionScore: freshScore,
		}, now)
		if err := uc.StatsRepo.SaveParticipantStats(ctx, participantStats); err != nil {
			return err
		}

		key := participant.ID
		if err := uc.Audit.Log(ctx, domain.AuditEntry{
			ParticipantKey: &key,
			Action:         domain.AuditSubmissionAccepted,
			Details:        fmt.Sprintf("submission_id=%d image_id=%s", submission.ID, submission.ImageID),
			CreatedAt:      now,
		}); err != nil {
			return err
		}
		if res.flagged != nil {
			if err := uc.Audit.Log(ctx, domain.AuditEntry{
				ParticipantKey: &key,
				Action:         domain.AuditParticipantFlagged,
				Details:        fmt.Sprintf("attention_score=%.3f total_checks=%d", res.flagged.AttentionScore, res.flagged.TotalChecks),
				CreatedAt:      now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.recordFailure(input.ParticipantID, err)
		return nil, err
	}

	uc.afterCommit(res)

	return &submissiondto.SubmitOutput{
		SubmissionID:    res.submission.ID,
		WordCount:       res.submission.WordCount,
		IsAttention:     res.submission.IsAttention,
		AttentionPassed: res.submission.AttentionPassed,
		TooFast:         res.submission.TooFastFlag,
		QualityScore:    res.submission.QualityScore,
	}, nil
}

func (uc *DefaultSubmissionUsecase) validate(input *submissiondto.SubmitInput) (int, error) {
	if input == nil {
		return 0, fmt.Errorf("%w: empty submission", domain.ErrValidation)
	}
	if strings.TrimSpace(input.ParticipantID) == "" {
		return 0, fmt.Errorf("%w: participant_id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.ImageID) == "" {
		return 0, fmt.Errorf("%w: image_id is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(input.Description) > maxDescriptionRunes {
		return 0, fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, maxDescriptionRunes)
	}
	if utf8.RuneCountInString(input.Feedback) > maxFeedbackRunes {
		return 0, fmt.Errorf("%w: feedback exceeds %d characters", domain.ErrValidation, maxFeedbackRunes)
	}
	if input.Rating < minRating || input.Rating > maxRating {
		return 0, fmt.Errorf("%w: rating must be between %d and %d", domain.ErrValidation, minRating, maxRating)
	}
	if input.TimeSpentSeconds != nil && *input.TimeSpentSeconds < 0 {
		return 0, fmt.Errorf("%w: time_spent_seconds must not be negative", domain.ErrValidation)
	}
	if err := validateWorkload(input.Workload); err != nil {
		return 0, err
	}

	wordCount := len(strings.Fields(input.Description))
	if wordCount < uc.Policy.MinWordCount {
		return 0, fmt.Errorf("%w: description must contain at least %d words", domain.ErrValidation, uc.Policy.MinWordCount)
	}
	return wordCount, nil
}

func validateWorkload(w domain.WorkloadRatings) error {
	dimensions := []struct {
		name  string
		value *int
	}{
		{"nasa_mental", w.Mental},
		{"nasa_physical", w.Physical},
		{"nasa_temporal", w.Temporal},
		{"nasa_performance", w.Performance},
		{"nasa_effort", w.Effort},
		{"nasa_frustration", w.Frustration},
	}
	for _, d := range dimensions {
		if d.value != nil && (*d.value < minWorkloadRating || *d.value > maxWorkloadRating) {
			return fmt.Errorf("%w: %s must be between %d and %d", domain.ErrValidation, d.name, minWorkloadRating, maxWorkloadRating)
		}
	}
	return nil
}

func (uc *DefaultSubmissionUsecase) hashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip + uc.Policy.IPHashSalt))
	return hex.EncodeToString(sum[:])
}

func (uc *DefaultSubmissionUsecase) recordFailure(participantID string, err error) {
	reason := rejectionReason(err)
	if reason == "" {
		uc.Metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		uc.log.Error("submission failed", zap.String("participant_id", participantID), zap.Error(err))
		return
	}
	uc.Metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
	uc.Metrics.AdmissionRejectedTotal.WithLabelValues(reason).Inc()
	uc.log.Info("submission rejected", zap.String("participant_id", participantID), zap.String("reason", reason))
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrFlagged):
		return "flagged"
	case errors.Is(err, domain.ErrPaymentRequired):
		return "payment_required"
	case errors.Is(err, domain.ErrConsentRequired):
		return "consent_required"
	default:
		return ""
	}
}

func (uc *DefaultSubmissionUsecase) afterCommit(res submitResult) {
	s := res.submission
	uc.Metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	uc.Metrics.QualityScore.Observe(s.QualityScore)
	if s.IsAttention {
		result := "failed"
		if s.AttentionPassed != nil && *s.AttentionPassed {
			result = "passed"
		}
		uc.Metrics.AttentionChecksTotal.WithLabelValues(result).Inc()
	}

	uc.Events.emit(publisher.TopicSubmissionAccepted, s.ParticipantKey, publisher.SubmissionAcceptedEvent{
		EventID:         uuid.NewString(),
		ParticipantID:   res.participant.ExternalID,
		SubmissionID:    s.ID,
		ImageID:         s.ImageID,
		WordCount:       s.WordCount,
		IsAttention:     s.IsAttention,
		AttentionPassed: s.AttentionPassed,
		QualityScore:    s.QualityScore,
		OccurredAt:      s.CreatedAt,
	})

	if res.flagged != nil {
		uc.Metrics.ParticipantsFlagged.Inc()
		uc.log.Warn("participant flagged",
			zap.String("participant_id", res.participant.ExternalID),
			zap.Float64("attention_score", res.flagged.AttentionScore),
			zap.Int64("total_checks", res.flagged.TotalChecks),
		)
		uc.Events.emit(publisher.TopicParticipantFlagged, s.ParticipantKey, publisher.ParticipantFlaggedEvent{
			EventID:        uuid.NewString(),
			ParticipantID:  res.participant.ExternalID,
			AttentionScore: res.flagged.AttentionScore,
			TotalChecks:    res.flagged.TotalChecks,
			OccurredAt:     res.flagged.UpdatedAt,
		})
	}
}

func (uc *DefaultSubmissionUsecase) GetParticipantSubmissions(ctx context.Context, participantID string) ([]*submissiondto.Submission, error) {
	participant, err := uc.ParticipantRepo.GetParticipantByExternalID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	submissions, err := uc.SubmissionRepo.GetSubmissionsByParticipant(ctx, participant.ID)
	if err != nil {
		return nil, err
	}

	out := make([]*submissiondto.Submission, 0, len(submissions))
	for _, s := range submissions {
		out = append(out, &submissiondto.Submission{
			ID:               s.ID,
			ImageID:          s.ImageID,
			Description:      s.Description,
			WordCount:        s.WordCount,
			Rating:           s.Rating,
			Feedback:         s.Feedback,
			TimeSpentSeconds: s.TimeSpentSeconds,
			IsSurvey:         s.IsSurvey,
			IsPractice:       s.IsPractice,
			IsAttention:      s.IsAttention,
			AttentionPassed:  s.AttentionPassed,
			TooFastFlag:      s.TooFastFlag,
			QualityScore:     s.QualityScore,
			Workload:         s.Workload,
			CreatedAt:        s.CreatedAt,
		})
	}
	return out, nil
}

func (uc *DefaultSubmissionUsecase) GetSummary(ctx context.Context) (*submissiondto.SummaryOutput, error) {
	summary, err := uc.SubmissionRepo.GetSubmissionSummary(ctx)
	if err != nil {
		return nil, err
	}

	out := &submissiondto.SummaryOutput{TotalSubmissions: summary.TotalSubmissions}
	if summary.TotalSubmissions > 0 {
		out.AvgWordCount = float64(summary.TotalWords) / float64(summary.TotalSubmissions)
	}
	if summary.AttentionTotal > 0 {
		out.AttentionFailRate = float64(summary.AttentionFailures) / float64(summary.AttentionTotal)
	}
	return out, nil
}

func (uc *DefaultSubmissionUsecase) UpsertAttentionCheck(ctx context.Context, input *submissiondto.UpsertAttentionCheckInput) error {
	if input == nil || strings.TrimSpace(input.ImageID) == "" {
		return fmt.Errorf("%w: image_id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.ExpectedTerm) == "" {
		return fmt.Errorf("%w: expected_term is required", domain.ErrValidation)
	}
	return uc.CheckRepo.UpsertAttentionCheck(ctx, &domain.AttentionCheck{
		ImageID:      input.ImageID,
		ExpectedTerm: input.ExpectedTerm,
		Strict:       input.Strict,
		IsActive:     input.IsActive,
	})
}
