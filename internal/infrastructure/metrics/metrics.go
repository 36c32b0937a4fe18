package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EngineMetrics holds the counters of the submission and incentive engine.
type EngineMetrics struct {
	SubmissionsTotal        *prometheus.CounterVec
	AdmissionRejectedTotal  *prometheus.CounterVec
	AttentionChecksTotal    *prometheus.CounterVec
	ParticipantsFlagged     prometheus.Counter
	QualityScore            prometheus.Histogram
	SubmissionDuration      prometheus.Histogram
	LotteryAttemptsTotal    *prometheus.CounterVec
	RewardAmountTotal       prometheus.Counter
	PaymentOrdersTotal      *prometheus.CounterVec
	PaymentTransitionsTotal *prometheus.CounterVec
}

// NewEngineMetrics registers the metrics on reg. Tests pass a fresh
// prometheus.NewRegistry(); main passes prometheus.DefaultRegisterer.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	factory := promauto.With(reg)

	return &EngineMetrics{
		SubmissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cognit_submissions_total",
				Help: "Submissions by outcome",
			},
			[]string{"outcome"},
		),
		AdmissionRejectedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cognit_admission_rejected_total",
				Help: "Submissions rejected by the admission gate, by reason",
			},
			[]string{"reason"},
		),
		AttentionChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cognit_attention_checks_total",
				Help: "Attention-check evaluations by result",
			},
			[]string{"result"},
		),
		ParticipantsFlagged: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "cognit_participants_flagged_total",
				Help: "Participants that became flagged",
			},
		),
		QualityScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cognit_submission_quality_score",
				Help:    "Distribution of persisted quality scores",
				Buckets: prometheus.LinearBuckets(0, 0.1, 11),
			},
		),
		SubmissionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cognit_submission_processing_seconds",
				Help:    "Time spent processing a submission",
				Buckets: prometheus.DefBuckets,
			},
		),
		LotteryAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cognit_lottery_attempts_total",
				Help: "Reward lottery calls by outcome",
			},
			[]string{"outcome"},
		),
		RewardAmountTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "cognit_reward_amount_total",
				Help: "Sum of reward amounts awarded",
			},
		),
		PaymentOrdersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cognit_payment_orders_total",
				Help: "Payment order requests by outcome",
			},
			[]string{"outcome"},
		),
		PaymentTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cognit_payment_transitions_total",
				Help: "Order paid transitions by source and whether the row changed",
			},
			[]string{"source", "applied"},
		),
	}
}
