// Package testdb opens an isolated in-memory SQLite database with the service
// schema for repository and usecase tests.
package testdb

import (
	"fmt"
	"testing"

	"github.com/LavaJover/cognit-service/internal/infrastructure/logger"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a fresh database per call. The pool is limited to one
// connection so transactions serialize the way row locks would on Postgres.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.NewGormZapLogger(zap.NewNop(), gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(postgres.AllModels()...))
	return db
}
