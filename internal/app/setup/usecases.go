package setup

import (
	"fmt"

	"github.com/LavaJover/cognit-service/internal/infrastructure/metrics"
	"github.com/LavaJover/cognit-service/internal/usecase"
)

type UseCases struct {
	ParticipantUsecase usecase.ParticipantUsecase
	SubmissionUsecase  usecase.SubmissionUsecase
	RewardUsecase      usecase.RewardUsecase
	PaymentUsecase     usecase.PaymentUsecase
}

func InitializeUseCases(deps *Dependencies, engineMetrics *metrics.EngineMetrics) (*UseCases, error) {
	cfg := deps.Config
	repos := deps.Repositories
	events := usecase.NewEventSink(deps.Publisher, cfg.KafkaService.TopicPrefix, deps.Log)

	participantUsecase := usecase.NewDefaultParticipantUsecase(
		deps.TxManager,
		repos.ParticipantRepo,
		deps.Audit,
		deps.Log,
	)

	submissionUsecase := usecase.NewDefaultSubmissionUsecase(
		deps.TxManager,
		repos.ParticipantRepo,
		repos.CheckRepo,
		repos.StatsRepo,
		repos.SubmissionRepo,
		deps.Audit,
		events,
		engineMetrics,
		usecase.SubmissionPolicy{
			MinWordCount:   cfg.Submission.MinWordCount,
			TooFastSeconds: cfg.Submission.TooFastSeconds,
			IPHashSalt:     cfg.Submission.IPHashSalt,
		},
		deps.Log,
	)

	rewardUsecase := usecase.NewDefaultRewardUsecase(
		deps.TxManager,
		repos.ParticipantRepo,
		repos.StatsRepo,
		repos.RewardRepo,
		deps.Audit,
		events,
		engineMetrics,
		usecase.RewardPolicy{
			Amount:   cfg.Reward.Amount,
			Cooldown: cfg.Reward.Cooldown,
		},
		deps.Log,
	)

	paymentUsecase, err := usecase.NewDefaultPaymentUsecase(
		deps.TxManager,
		repos.ParticipantRepo,
		repos.PaymentRepo,
		deps.Gateway,
		deps.Audit,
		events,
		engineMetrics,
		usecase.PaymentPolicy{
			Amount:   cfg.Payment.Amount,
			Currency: cfg.Payment.Currency,
		},
		deps.Log,
	)
	if err != nil {
		return nil, fmt.Errorf("payment usecase: %w", err)
	}

	return &UseCases{
		ParticipantUsecase: participantUsecase,
		SubmissionUsecase:  submissionUsecase,
		RewardUsecase:      rewardUsecase,
		PaymentUsecase:     paymentUsecase,
	}, nil
}
