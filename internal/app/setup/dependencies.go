package setup

import (
	"fmt"

	"github.com/LavaJover/cognit-service/internal/config"
	"github.com/LavaJover/cognit-service/internal/domain"
	publisher "github.com/LavaJover/cognit-service/internal/infrastructure/kafka"
	"github.com/LavaJover/cognit-service/internal/infrastructure/logger"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/cognit-service/internal/infrastructure/razorpay"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EventPublisher interface {
	domain.PublisherPort
	Close() error
}

type Dependencies struct {
	Config       *config.CognitConfig
	Log          *zap.Logger
	DB           *gorm.DB
	TxManager    domain.TxManager
	Publisher    EventPublisher
	Gateway      domain.PaymentGateway
	Audit        domain.AuditLogger
	Repositories *Repositories
}

type Repositories struct {
	ParticipantRepo domain.ParticipantRepository
	CheckRepo       domain.AttentionCheckRepository
	StatsRepo       domain.StatsRepository
	SubmissionRepo  domain.SubmissionRepository
	RewardRepo      domain.RewardRepository
	PaymentRepo     domain.PaymentRepository
}

func InitializeDependencies(cfg *config.CognitConfig, log *zap.Logger) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg, log)

	gateway, err := razorpay.NewClient(
		cfg.Payment.BaseURL,
		cfg.Payment.KeyID,
		cfg.Payment.KeySecret,
		cfg.Payment.WebhookSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("payment gateway: %w", err)
	}

	return &Dependencies{
		Config:       cfg,
		Log:          log,
		DB:           db,
		TxManager:    postgres.NewTxManager(db),
		Publisher:    initPublisher(cfg, log),
		Gateway:      gateway,
		Audit:        logger.NewPGAuditLogger(db, postgres.Conn),
		Repositories: NewRepositories(db),
	}, nil
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		ParticipantRepo: repository.NewDefaultParticipantRepository(db),
		CheckRepo:       repository.NewDefaultAttentionCheckRepository(db),
		StatsRepo:       repository.NewDefaultStatsRepository(db),
		SubmissionRepo:  repository.NewDefaultSubmissionRepository(db),
		RewardRepo:      repository.NewDefaultRewardRepository(db),
		PaymentRepo:     repository.NewDefaultPaymentRepository(db),
	}
}

func initPublisher(cfg *config.CognitConfig, log *zap.Logger) EventPublisher {
	if len(cfg.KafkaService.Brokers) == 0 {
		log.Info("no kafka brokers configured, domain events are dropped")
		return publisher.NopPublisher{}
	}
	log.Info("kafka publisher configured", zap.Strings("brokers", cfg.KafkaService.Brokers))
	return publisher.NewDefaultKafkaPublisher(cfg.KafkaService.Brokers)
}
