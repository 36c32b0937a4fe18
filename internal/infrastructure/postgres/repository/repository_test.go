package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createParticipant(t *testing.T, db *gorm.DB, externalID string) *domain.Participant {
	t.Helper()
	p := &domain.Participant{ExternalID: externalID, Username: "tester"}
	require.NoError(t, NewDefaultParticipantRepository(db).CreateParticipant(context.Background(), p))
	return p
}

func TestParticipantRepository_CreateAndGet(t *testing.T) {
	db := testdb.New(t)
	repo := NewDefaultParticipantRepository(db)
	ctx := context.Background()

	p := createParticipant(t, db, "P-001")
	assert.NotZero(t, p.ID)
	assert.Equal(t, domain.PaymentStatusNone, p.PaymentStatus)

	got, err := repo.GetParticipantByExternalID(ctx, "P-001")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "tester", got.Username)
	assert.False(t, got.ConsentGiven)

	_, err = repo.GetParticipantByExternalID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantRepository_DuplicateExternalID(t *testing.T) {
	db := testdb.New(t)
	createParticipant(t, db, "P-dup")

	err := NewDefaultParticipantRepository(db).CreateParticipant(context.Background(), &domain.Participant{ExternalID: "P-dup"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestParticipantRepository_ConsentAndPaymentStatus(t *testing.T) {
	db := testdb.New(t)
	repo := NewDefaultParticipantRepository(db)
	ctx := context.Background()
	p := createParticipant(t, db, "P-002")

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.UpdateConsent(ctx, p.ID, true, at))
	require.NoError(t, repo.UpdatePaymentStatus(ctx, p.ID, domain.PaymentStatusPaid))

	got, err := repo.GetParticipantByExternalID(ctx, "P-002")
	require.NoError(t, err)
	assert.True(t, got.ConsentGiven)
	require.NotNil(t, got.ConsentAt)
	assert.True(t, got.ConsentAt.Equal(at))
	assert.Equal(t, domain.PaymentStatusPaid, got.PaymentStatus)

	require.NoError(t, repo.UpdateConsent(ctx, p.ID, false, at.Add(time.Hour)))
	got, err = repo.GetParticipantByExternalID(ctx, "P-002")
	require.NoError(t, err)
	assert.False(t, got.ConsentGiven)
	assert.Nil(t, got.ConsentAt)

	assert.ErrorIs(t, repo.UpdatePaymentStatus(ctx, 9999, domain.PaymentStatusPaid), domain.ErrNotFound)
}

func TestAttentionCheckRepository_Upsert(t *testing.T) {
	db := testdb.New(t)
	repo := NewDefaultAttentionCheckRepository(db)
	ctx := context.Background()

	_, err := repo.GetActiveAttentionCheck(ctx, "img-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.UpsertAttentionCheck(ctx, &domain.AttentionCheck{ImageID: "img-1", ExpectedTerm: "cat", IsActive: true}))
	check, err := repo.GetActiveAttentionCheck(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, "cat", check.ExpectedTerm)
	assert.False(t, check.Strict)

	require.NoError(t, repo.UpsertAttentionCheck(ctx, &domain.AttentionCheck{ImageID: "img-1", ExpectedTerm: "dog", Strict: true, IsActive: true}))
	check, err = repo.GetActiveAttentionCheck(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, "dog", check.ExpectedTerm)
	assert.True(t, check.Strict)

	require.NoError(t, repo.UpsertAttentionCheck(ctx, &domain.AttentionCheck{ImageID: "img-1", ExpectedTerm: "dog", IsActive: false}))
	_, err = repo.GetActiveAttentionCheck(ctx, "img-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatsRepository_DefaultsAndLockSeedsRow(t *testing.T) {
	db := testdb.New(t)
	repo := NewDefaultStatsRepository(db)
	ctx := context.Background()
	p := createParticipant(t, db, "P-stats")

	as, err := repo.GetAttentionStats(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAttentionScore, as.AttentionScore)
	assert.False(t, as.IsFlagged)

	ps, err := repo.GetParticipantStats(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, ps.TotalWords)
	assert.Equal(t, domain.DefaultAttentionScore, ps.AttentionScore)
	assert.Nil(t, ps.LastRewardAttemptAt)

	txManager := postgres.NewTxManager(db)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	err = txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		locked, err := repo.LockParticipantStats(ctx, p.ID)
		if err != nil {
			return err
		}
		locked.TotalWords = 42
		locked.TotalSubmissions = 1
		locked.UpdatedAt = now
		if err := repo.SaveParticipantStats(ctx, locked); err != nil {
			return err
		}
		return repo.StampRewardAttempt(ctx, p.ID, now)
	})
	require.NoError(t, err)

	// a second lock must reuse the seeded row rather than insert another
	err = txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := repo.LockParticipantStats(ctx, p.ID)
		return err
	})
	require.NoError(t, err)

	ps, err = repo.GetParticipantStats(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 42, ps.TotalWords)
	assert.EqualValues(t, 1, ps.TotalSubmissions)
	require.NotNil(t, ps.LastRewardAttemptAt)
	assert.True(t, ps.LastRewardAttemptAt.Equal(now))

	var rows int64
	require.NoError(t, db.Table("participant_stats").Where("participant_key = ?", p.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestStatsRepository_SaveAttentionStats(t *testing.T) {
	db := testdb.New(t)
	repo := NewDefaultStatsRepository(db)
	ctx := context.Background()
	p := createParticipant(t, db, "P-att")

	locked, err := repo.LockAttentionStats(ctx, p.ID)
	require.NoError(t, err)
	locked.TotalChecks = 3
	locked.PassedChecks = 1
	locked.FailedChecks = 2
	locked.AttentionScore = 1.0 / 3.0
	locked.IsFlagged = true
	require.NoError(t, repo.SaveAttentionStats(ctx, locked))

	got, err := repo.GetAttentionStats(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.TotalChecks)
	assert.True(t, got.IsFlagged)
	assert.InDelta(t, 0.333, got.AttentionScore, 0.001)
}

func TestRewardRepository_CreateWinnerOnce(t *testing.T) {
	db := testdb.New(t)
	repo := NewDefaultRewardRepository(db)
	ctx := context.Background()
	p := createParticipant(t, db, "P-win")

	_, err := repo.GetWinner(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	winner := &domain.RewardWinner{ParticipantKey: p.ID, RewardAmount: 500, Status: domain.RewardStatusPending, SelectedAt: time.Now().UTC()}
	inserted, err := repo.CreateWinner(ctx, winner)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NotZero(t, winner.ID)

	inserted, err = repo.CreateWinner(ctx, &domain.RewardWinner{ParticipantKey: p.ID, RewardAmount: 900, Status: domain.RewardStatusPending, SelectedAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := repo.GetWinner(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got.RewardAmount)
	assert.Equal(t, domain.RewardStatusPending, got.Status)
}

func TestPaymentRepository_MarkOrderPaidIsConditional(t *testing.T) {
	db := testdb.New(t)
	repo := NewDefaultPaymentRepository(db)
	ctx := context.Background()
	p := createParticipant(t, db, "P-pay")

	order := &domain.PaymentOrder{
		ParticipantKey: p.ID,
		OrderID:        "order_1",
		Receipt:        "rcpt_1",
		Amount:         5000,
		Currency:       "INR",
		Status:         domain.OrderStatusCreated,
	}
	require.NoError(t, repo.CreateOrder(ctx, order))

	open, err := repo.GetOpenOrder(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "order_1", open.OrderID)

	paidAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	changed, err := repo.MarkOrderPaid(ctx, "order_1", "pay_1", "sig", paidAt)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MarkOrderPaid(ctx, "order_1", "pay_2", "sig2", paidAt.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = repo.MarkOrderPaid(ctx, "order_unknown", "pay_3", "", paidAt)
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := repo.GetOrderByOrderID(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, got.Status)
	assert.Equal(t, "pay_1", got.PaymentID)
	require.NotNil(t, got.PaidAt)
	assert.True(t, got.PaidAt.Equal(paidAt))

	_, err = repo.GetOpenOrder(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.CreateOrder(ctx, &domain.PaymentOrder{ParticipantKey: p.ID, OrderID: "order_1", Receipt: "rcpt_2", Amount: 5000, Currency: "INR", Status: domain.OrderStatusCreated})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSubmissionRepository_ListAndSummary(t *testing.T) {
	db := testdb.New(t)
	repo := NewDefaultSubmissionRepository(db)
	ctx := context.Background()
	p := createParticipant(t, db, "P-sub")

	passed, failed := true, false
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	inputs := []*domain.Submission{
		{ParticipantKey: p.ID, ImageID: "a", Description: "one two", WordCount: 20, Rating: 5, QualityScore: 0.5, CreatedAt: base},
		{ParticipantKey: p.ID, ImageID: "b", Description: "three", WordCount: 40, Rating: 7, IsAttention: true, AttentionPassed: &passed, QualityScore: 0.7, CreatedAt: base.Add(time.Minute)},
		{ParticipantKey: p.ID, ImageID: "c", Description: "four", WordCount: 30, Rating: 3, IsAttention: true, AttentionPassed: &failed, QualityScore: 0.3, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, s := range inputs {
		require.NoError(t, repo.CreateSubmission(ctx, s))
	}

	list, err := repo.GetSubmissionsByParticipant(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].ImageID)
	assert.Equal(t, "a", list[2].ImageID)
	require.NotNil(t, list[0].AttentionPassed)
	assert.False(t, *list[0].AttentionPassed)

	summary, err := repo.GetSubmissionSummary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, summary.TotalSubmissions)
	assert.EqualValues(t, 90, summary.TotalWords)
	assert.EqualValues(t, 2, summary.AttentionTotal)
	assert.EqualValues(t, 1, summary.AttentionFailures)
}

func TestSubmissionRepository_RatingCheckConstraint(t *testing.T) {
	db := testdb.New(t)
	p := createParticipant(t, db, "P-rating")

	err := NewDefaultSubmissionRepository(db).CreateSubmission(context.Background(), &domain.Submission{
		ParticipantKey: p.ID, ImageID: "x", Description: "bad", WordCount: 1, Rating: 11,
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestSubmissionRepository_Export(t *testing.T) {
	db := testdb.New(t)
	repo := NewDefaultSubmissionRepository(db)
	ctx := context.Background()
	alice := createParticipant(t, db, "P-alice")
	bob := createParticipant(t, db, "P-bob")

	mental := 65
	require.NoError(t, repo.CreateSubmission(ctx, &domain.Submission{
		ParticipantKey: alice.ID, ImageID: "a", Description: "one", WordCount: 1, Rating: 5,
		IsPractice: true, Workload: domain.WorkloadRatings{Mental: &mental},
	}))
	require.NoError(t, repo.CreateSubmission(ctx, &domain.Submission{
		ParticipantKey: bob.ID, ImageID: "b", Description: "two", WordCount: 1, Rating: 5,
	}))

	var owners []string
	var rows []*domain.Submission
	require.NoError(t, repo.ExportSubmissions(ctx, func(participantID string, s *domain.Submission) error {
		owners = append(owners, participantID)
		rows = append(rows, s)
		return nil
	}))
	assert.Equal(t, []string{"P-alice", "P-bob"}, owners)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].IsPractice)
	require.NotNil(t, rows[0].Workload.Mental)
	assert.Equal(t, 65, *rows[0].Workload.Mental)
	assert.False(t, rows[1].IsPractice)
	assert.Nil(t, rows[1].Workload.Mental)

	stop := errors.New("stop")
	calls := 0
	err := repo.ExportSubmissions(ctx, func(string, *domain.Submission) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db := testdb.New(t)
	repo := NewDefaultParticipantRepository(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := postgres.NewTxManager(db).WithinTransaction(ctx, func(ctx context.Context) error {
		if err := repo.CreateParticipant(ctx, &domain.Participant{ExternalID: "P-rollback"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetParticipantByExternalID(ctx, "P-rollback")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
