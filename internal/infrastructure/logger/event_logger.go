package logger

import (
	"context"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	"gorm.io/gorm"
)

// AuditLogRecord is an append-only row in audit_log.
type AuditLogRecord struct {
	ID             uint   `gorm:"primaryKey"`
	ParticipantKey *int64 `gorm:"index"`
	Action         string `gorm:"size:64;not null;index"`
	Details        string
	CreatedAt      time.Time
}

func (AuditLogRecord) TableName() string {
	return "audit_log"
}

// PGAuditLogger writes audit entries through the transaction carried by ctx
// when one is present, so an entry commits or rolls back with the change it
// describes.
type PGAuditLogger struct {
	db    *gorm.DB
	txFor func(ctx context.Context, db *gorm.DB) *gorm.DB
}

func NewPGAuditLogger(db *gorm.DB, txFor func(ctx context.Context, db *gorm.DB) *gorm.DB) *PGAuditLogger {
	return &PGAuditLogger{db: db, txFor: txFor}
}

func (l *PGAuditLogger) Log(ctx context.Context, entry domain.AuditEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	record := AuditLogRecord{
		ParticipantKey: entry.ParticipantKey,
		Action:         string(entry.Action),
		Details:        entry.Details,
		CreatedAt:      createdAt,
	}
	return l.txFor(ctx, l.db).WithContext(ctx).Create(&record).Error
}
