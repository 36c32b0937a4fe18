package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	publisher "github.com/LavaJover/cognit-service/internal/infrastructure/kafka"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRewardUsecase(env *testEnv, now *time.Time, draw float64) *DefaultRewardUsecase {
	uc := NewDefaultRewardUsecase(
		env.tx,
		env.participants,
		env.stats,
		env.rewards,
		env.audit,
		env.events,
		env.metrics,
		RewardPolicy{Amount: 500, Cooldown: 60 * time.Second},
		zap.NewNop(),
	)
	uc.now = func() time.Time { return *now }
	uc.draw = func() float64 { return draw }
	return uc
}

func TestSelectWinner_LosingDrawStampsCooldown(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	uc := newRewardUsecase(env, &now, 0.99)
	p := env.createParticipant(t, "P-lose", participantOpts{})
	ctx := context.Background()

	out, err := uc.SelectWinner(ctx, "P-lose")
	require.NoError(t, err)
	assert.False(t, out.Selected)
	assert.False(t, out.CooldownActive)

	stats, err := env.stats.GetParticipantStats(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, stats.LastRewardAttemptAt)
	assert.True(t, stats.LastRewardAttemptAt.Equal(now))

	now = now.Add(10*time.Second + 500*time.Millisecond)
	out, err = uc.SelectWinner(ctx, "P-lose")
	require.NoError(t, err)
	assert.True(t, out.CooldownActive)
	require.NotNil(t, out.RetryAfter)
	assert.Equal(t, 50, *out.RetryAfter)

	// the cooldown response must not move the stamp
	stats, err = env.stats.GetParticipantStats(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stats.LastRewardAttemptAt.Equal(now.Add(-10*time.Second-500*time.Millisecond)))

	now = now.Add(50 * time.Second)
	out, err = uc.SelectWinner(ctx, "P-lose")
	require.NoError(t, err)
	assert.False(t, out.CooldownActive)
	assert.False(t, out.Selected)

	assert.Equal(t, 2.0, testutil.ToFloat64(env.metrics.LotteryAttemptsTotal.WithLabelValues("not_selected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.LotteryAttemptsTotal.WithLabelValues("cooldown")))
}

func TestSelectWinner_WinsOnceThenAlreadyWinner(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	uc := newRewardUsecase(env, &now, 0.0)
	env.createParticipant(t, "P-win", participantOpts{})
	ctx := context.Background()

	out, err := uc.SelectWinner(ctx, "P-win")
	require.NoError(t, err)
	assert.True(t, out.Selected)
	require.NotNil(t, out.RewardAmount)
	assert.Equal(t, 500.0, *out.RewardAmount)

	// already_winner is reported before the cooldown is considered
	out, err = uc.SelectWinner(ctx, "P-win")
	require.NoError(t, err)
	assert.True(t, out.AlreadyWinner)
	assert.False(t, out.Selected)
	assert.False(t, out.CooldownActive)

	status, err := uc.GetRewardStatus(ctx, "P-win")
	require.NoError(t, err)
	assert.True(t, status.IsWinner)
	require.NotNil(t, status.Status)
	assert.Equal(t, domain.RewardStatusPending, *status.Status)

	assert.EqualValues(t, 1, env.auditCount(t, domain.AuditRewardSelected))
	require.Eventually(t, func() bool {
		return env.publisher.count(publisher.Topic("test", publisher.TopicRewardSelected)) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSelectWinner_DrawComparedWithProbability(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// base probability is 0.05: a draw of exactly 0.05 loses, just below wins
	env.createParticipant(t, "P-edge-lose", participantOpts{})
	out, err := newRewardUsecase(env, &now, 0.05).SelectWinner(ctx, "P-edge-lose")
	require.NoError(t, err)
	assert.False(t, out.Selected)

	env.createParticipant(t, "P-edge-win", participantOpts{})
	out, err = newRewardUsecase(env, &now, 0.049).SelectWinner(ctx, "P-edge-win")
	require.NoError(t, err)
	assert.True(t, out.Selected)
}

func TestSelectWinner_UnknownParticipant(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()
	_, err := newRewardUsecase(env, &now, 0).SelectWinner(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = newRewardUsecase(env, &now, 0).GetRewardStatus(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSelectWinner_ConcurrentCallsSelectAtMostOnce(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	uc := newRewardUsecase(env, &now, 0.0)
	p := env.createParticipant(t, "P-race", participantOpts{})

	const callers = 8
	var (
		wg       sync.WaitGroup
		selected atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.SelectWinner(context.Background(), "P-race")
			if assert.NoError(t, err) && out.Selected {
				selected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, selected.Load())
	var winners int64
	require.NoError(t, env.db.Table("reward_winners").Where("participant_key = ?", p.ID).Count(&winners).Error)
	assert.EqualValues(t, 1, winners)
}

func TestGetRewardStatus_NoWinner(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()
	uc := newRewardUsecase(env, &now, 0.99)
	p := env.createParticipant(t, "P-status", participantOpts{})
	ctx := context.Background()

	require.NoError(t, env.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		stats, err := env.stats.LockParticipantStats(ctx, p.ID)
		if err != nil {
			return err
		}
		ApplySubmission(stats, SubmissionContribution{WordCount: 600, IsSurvey: true}, now)
		return env.stats.SaveParticipantStats(ctx, stats)
	}))

	status, err := uc.GetRewardStatus(ctx, "P-status")
	require.NoError(t, err)
	assert.False(t, status.IsWinner)
	assert.Nil(t, status.RewardAmount)
	assert.Nil(t, status.Status)
	assert.EqualValues(t, 600, status.TotalWords)
	assert.EqualValues(t, 1, status.SurveyRounds)
	assert.True(t, status.PriorityEligible)
}
