package publisher

import "time"

const (
	TopicSubmissionAccepted = "submission.accepted"
	TopicParticipantFlagged = "participant.flagged"
	TopicRewardSelected     = "reward.selected"
	TopicPaymentPaid        = "payment.paid"
)

// Topic prefixes name with the deployment prefix, e.g. "cognit.payment.paid".
func Topic(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

type SubmissionAcceptedEvent struct {
	EventID         string    `json:"event_id"`
	ParticipantID   string    `json:"participant_id"`
	SubmissionID    int64     `json:"submission_id"`
	ImageID         string    `json:"image_id"`
	WordCount       int       `json:"word_count"`
	IsAttention     bool      `json:"is_attention"`
	AttentionPassed *bool     `json:"attention_passed"`
	QualityScore    float64   `json:"quality_score"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type ParticipantFlaggedEvent struct {
	EventID        string    `json:"event_id"`
	ParticipantID  string    `json:"participant_id"`
	AttentionScore float64   `json:"attention_score"`
	TotalChecks    int64     `json:"total_checks"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type RewardSelectedEvent struct {
	EventID       string    `json:"event_id"`
	ParticipantID string    `json:"participant_id"`
	RewardAmount  float64   `json:"reward_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type PaymentPaidEvent struct {
	EventID        string    `json:"event_id"`
	ParticipantKey int64     `json:"participant_key"`
	OrderID        string    `json:"order_id"`
	PaymentID      string    `json:"payment_id"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	Source         string    `json:"source"`
	OccurredAt     time.Time `json:"occurred_at"`
}
