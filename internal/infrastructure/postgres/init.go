package postgres

import (
	"github.com/LavaJover/cognit-service/internal/config"
	"github.com/LavaJover/cognit-service/internal/infrastructure/logger"
	"github.com/LavaJover/cognit-service/internal/infrastructure/migrate"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// AllModels lists every table owned by the service, parents first.
func AllModels() []interface{} {
	return []interface{}{
		&models.ParticipantModel{},
		&models.AttentionCheckModel{},
		&models.AttentionStatsModel{},
		&models.ParticipantStatsModel{},
		&models.SubmissionModel{},
		&models.RewardWinnerModel{},
		&models.PaymentOrderModel{},
		&logger.AuditLogRecord{},
	}
}

func MustInitDB(cfg *config.CognitConfig, log *zap.Logger) *gorm.DB {
	level := gormlogger.Warn
	if cfg.LogConfig.LogLevel == "debug" {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.Dsn), &gorm.Config{
		Logger:         logger.NewGormZapLogger(log, level),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("failed to init db", zap.Error(err))
	}

	if cfg.Database.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.Database.MigrationsPath, log); err != nil {
			log.Fatal("failed to apply migrations", zap.Error(err))
		}
		return db
	}

	if err := db.AutoMigrate(AllModels()...); err != nil {
		log.Fatal("failed to auto-migrate", zap.Error(err))
	}
	log.Info("database schema auto-migrated")

	return db
}
