package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/logger"
	"github.com/LavaJover/cognit-service/internal/infrastructure/metrics"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/testdb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages map[string][]domain.Message
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{messages: make(map[string][]domain.Message)}
}

func (p *recordingPublisher) Publish(topic string, msgs ...domain.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages[topic] = append(p.messages[topic], msgs...)
	return nil
}

func (p *recordingPublisher) count(topic string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages[topic])
}

type testEnv struct {
	db        *gorm.DB
	tx        *postgres.TxManager
	audit     *logger.PGAuditLogger
	metrics   *metrics.EngineMetrics
	publisher *recordingPublisher
	events    *EventSink

	participants *repository.DefaultParticipantRepository
	checks       *repository.DefaultAttentionCheckRepository
	stats        *repository.DefaultStatsRepository
	submissions  *repository.DefaultSubmissionRepository
	rewards      *repository.DefaultRewardRepository
	payments     *repository.DefaultPaymentRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testdb.New(t)
	pub := newRecordingPublisher()
	return &testEnv{
		db:           db,
		tx:           postgres.NewTxManager(db),
		audit:        logger.NewPGAuditLogger(db, postgres.Conn),
		metrics:      metrics.NewEngineMetrics(prometheus.NewRegistry()),
		publisher:    pub,
		events:       NewEventSink(pub, "test", zap.NewNop()),
		participants: repository.NewDefaultParticipantRepository(db),
		checks:       repository.NewDefaultAttentionCheckRepository(db),
		stats:        repository.NewDefaultStatsRepository(db),
		submissions:  repository.NewDefaultSubmissionRepository(db),
		rewards:      repository.NewDefaultRewardRepository(db),
		payments:     repository.NewDefaultPaymentRepository(db),
	}
}

type participantOpts struct {
	paid    bool
	consent bool
}

func (e *testEnv) createParticipant(t *testing.T, externalID string, opts participantOpts) *domain.Participant {
	t.Helper()
	ctx := context.Background()
	p := &domain.Participant{ExternalID: externalID}
	require.NoError(t, e.participants.CreateParticipant(ctx, p))
	if opts.paid {
		require.NoError(t, e.participants.UpdatePaymentStatus(ctx, p.ID, domain.PaymentStatusPaid))
		p.PaymentStatus = domain.PaymentStatusPaid
	}
	if opts.consent {
		require.NoError(t, e.participants.UpdateConsent(ctx, p.ID, true, time.Now().UTC()))
		p.ConsentGiven = true
	}
	return p
}

func (e *testEnv) auditCount(t *testing.T, action domain.AuditAction) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&logger.AuditLogRecord{}).Where("action = ?", string(action)).Count(&n).Error)
	return n
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
