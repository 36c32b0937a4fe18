package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	publisher "github.com/LavaJover/cognit-service/internal/infrastructure/kafka"
	"github.com/LavaJover/cognit-service/internal/infrastructure/metrics"
	rewarddto "github.com/LavaJover/cognit-service/internal/usecase/dto/reward"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	baseWinProbability     = 0.05
	priorityBonus          = 0.10
	lowAttentionPenalty    = 0.15
	minWinProbability      = 0.01
	lowAttentionScoreLimit = 0.75
)

type RewardUsecase interface {
	SelectWinner(ctx context.Context, participantID string) (*rewarddto.SelectOutput, error)
	GetRewardStatus(ctx context.Context, participantID string) (*rewarddto.StatusOutput, error)
}

type RewardPolicy struct {
	Amount   float64
	Cooldown time.Duration
}

type DefaultRewardUsecase struct {
	TxManager       domain.TxManager
	ParticipantRepo domain.ParticipantRepository
	StatsRepo       domain.StatsRepository
	RewardRepo      domain.RewardRepository
	Audit           domain.AuditLogger
	Events          *EventSink
	Metrics         *metrics.EngineMetrics
	Policy          RewardPolicy
	log             *zap.Logger
	now             func() time.Time
	draw            func() float64
}

func NewDefaultRewardUsecase(
	txManager domain.TxManager,
	participantRepo domain.ParticipantRepository,
	statsRepo domain.StatsRepository,
	rewardRepo domain.RewardRepository,
	audit domain.AuditLogger,
	events *EventSink,
	engineMetrics *metrics.EngineMetrics,
	policy RewardPolicy,
	log *zap.Logger,
) *DefaultRewardUsecase {
	return &DefaultRewardUsecase{
		TxManager:       txManager,
		ParticipantRepo: participantRepo,
		StatsRepo:       statsRepo,
		RewardRepo:      rewardRepo,
		Audit:           audit,
		Events:          events,
		Metrics:         engineMetrics,
		Policy:          policy,
		log:             log,
		now:             func() time.Time { return time.Now().UTC() },
		draw:            rand.Float64,
	}
}

// SelectionProbability is the chance of winning one draw.
func SelectionProbability(priorityEligible bool, attentionScore float64) float64 {
	p := baseWinProbability
	if priorityEligible {
		p += priorityBonus
	}
	if attentionScore < lowAttentionScoreLimit {
		p -= lowAttentionPenalty
	}
	return math.Max(p, minWinProbability)
}

func (uc *DefaultRewardUsecase) SelectWinner(ctx context.Context, participantID string) (*rewarddto.SelectOutput, error) {
	var (
		out         *rewarddto.SelectOutput
		participant *domain.Participant
		selectedAt  time.Time
	)

	err := uc.TxManager.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := uc.ParticipantRepo.GetParticipantByExternalID(ctx, participantID)
		if err != nil {
			return err
		}
		participant = p

		winner, err := uc.RewardRepo.GetWinner(ctx, p.ID)
		switch {
		case err == nil:
			amount := winner.RewardAmount
			out = &rewarddto.SelectOutput{AlreadyWinner: true, RewardAmount: &amount}
			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		stats, err := uc.StatsRepo.LockParticipantStats(ctx, p.ID)
		if err != nil {
			return err
		}

		now := uc.now()
		if stats.LastRewardAttemptAt != nil {
			elapsed := now.Sub(*stats.LastRewardAttemptAt)
			if elapsed < uc.Policy.Cooldown {
				remaining := uc.Policy.Cooldown - elapsed
				if remaining > uc.Policy.Cooldown {
					remaining = uc.Policy.Cooldown
				}
				retryAfter := int(math.Ceil(remaining.Seconds()))
				out = &rewarddto.SelectOutput{CooldownActive: true, RetryAfter: &retryAfter}
				return nil
			}
		}

		if err := uc.StatsRepo.StampRewardAttempt(ctx, p.ID, now); err != nil {
			return err
		}

		probability := SelectionProbability(stats.PriorityEligible, stats.AttentionScore)
		if uc.draw() >= probability {
			out = &rewarddto.SelectOutput{}
			return nil
		}

		inserted, err := uc.RewardRepo.CreateWinner(ctx, &domain.RewardWinner{
			ParticipantKey: p.ID,
			RewardAmount:   uc.Policy.Amount,
			Status:         domain.RewardStatusPending,
			SelectedAt:     now,
		})
		if err != nil {
			return err
		}
		amount := uc.Policy.Amount
		if !inserted {
			out = &rewarddto.SelectOutput{AlreadyWinner: true, RewardAmount: &amount}
			return nil
		}

		key := p.ID
		if err := uc.Audit.Log(ctx, domain.AuditEntry{
			ParticipantKey: &key,
			Action:         domain.AuditRewardSelected,
			Details:        fmt.Sprintf("reward_amount=%.2f probability=%.2f", amount, probability),
			CreatedAt:      now,
		}); err != nil {
			return err
		}
		selectedAt = now
		out = &rewarddto.SelectOutput{Selected: true, RewardAmount: &amount}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			uc.log.Error("reward selection failed", zap.String("participant_id", participantID), zap.Error(err))
		}
		uc.Metrics.LotteryAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	uc.Metrics.LotteryAttemptsTotal.WithLabelValues(lotteryOutcome(out)).Inc()
	if out.Selected {
		uc.Metrics.RewardAmountTotal.Add(*out.RewardAmount)
		uc.log.Info("reward winner selected",
			zap.String("participant_id", participant.ExternalID),
			zap.Float64("reward_amount", *out.RewardAmount),
		)
		uc.Events.emit(publisher.TopicRewardSelected, participant.ID, publisher.RewardSelectedEvent{
			EventID:       uuid.NewString(),
			ParticipantID: participant.ExternalID,
			RewardAmount:  *out.RewardAmount,
			OccurredAt:    selectedAt,
		})
	}

	return out, nil
}

func lotteryOutcome(out *rewarddto.SelectOutput) string {
	switch {
	case out.Selected:
		return "selected"
	case out.AlreadyWinner:
		return "already_winner"
	case out.CooldownActive:
		return "cooldown"
	default:
		return "not_selected"
	}
}

func (uc *DefaultRewardUsecase) GetRewardStatus(ctx context.Context, participantID string) (*rewarddto.StatusOutput, error) {
	participant, err := uc.ParticipantRepo.GetParticipantByExternalID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	stats, err := uc.StatsRepo.GetParticipantStats(ctx, participant.ID)
	if err != nil {
		return nil, err
	}

	out := &rewarddto.StatusOutput{
		TotalWords:       stats.TotalWords,
		SurveyRounds:     stats.SurveyRounds,
		PriorityEligible: stats.PriorityEligible,
	}

	winner, err := uc.RewardRepo.GetWinner(ctx, participant.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return out, nil
		}
		return nil, err
	}
	amount, status := winner.RewardAmount, winner.Status
	out.IsWinner = true
	out.RewardAmount = &amount
	out.Status = &status
	return out, nil
}
