package setup

import (
	"database/sql"

	"github.com/LavaJover/cognit-service/internal/delivery/http/handlers"
	"github.com/LavaJover/cognit-service/internal/delivery/http/router"
	"go.uber.org/zap"
)

func InitializeHandlers(log *zap.Logger, sqlDB *sql.DB, uc *UseCases) router.Handlers {
	return router.Handlers{
		Participant: handlers.NewParticipantHandler(log, uc.ParticipantUsecase),
		Submission:  handlers.NewSubmissionHandler(log, uc.SubmissionUsecase),
		Reward:      handlers.NewRewardHandler(log, uc.RewardUsecase),
		Payment:     handlers.NewPaymentHandler(log, uc.PaymentUsecase),
		Admin:       handlers.NewAdminHandler(log, uc.SubmissionUsecase),
		Health:      handlers.NewHealthHandler(log, sqlDB),
	}
}
