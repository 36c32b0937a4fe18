package domain

import (
	"context"
	"time"
)

type Submission struct {
	ID                         int64
	ParticipantKey             int64
	ImageID                    string
	Description                string
	WordCount                  int
	Rating                     int
	Feedback                   string
	TimeSpentSeconds           *float64
	IsSurvey                   bool
	IsPractice                 bool
	IsAttention                bool
	AttentionPassed            *bool
	TooFastFlag                bool
	AttentionScoreAtSubmission *float64
	QualityScore               float64
	SessionID                  string
	UserAgent                  string
	IPHash                     string
	Workload                   WorkloadRatings
	CreatedAt                  time.Time
}

// WorkloadRatings are the NASA-TLX self-reports collected after a trial. Each
// dimension is optional.
type WorkloadRatings struct {
	Mental      *int
	Physical    *int
	Temporal    *int
	Performance *int
	Effort      *int
	Frustration *int
}

type SubmissionSummary struct {
	TotalSubmissions  int64
	TotalWords        int64
	AttentionTotal    int64
	AttentionFailures int64
}

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *Submission) error
	GetSubmissionsByParticipant(ctx context.Context, participantKey int64) ([]*Submission, error)
	GetSubmissionSummary(ctx context.Context) (*SubmissionSummary, error)
	// ExportSubmissions walks every submission in id order, calling fn once per
	// row with the owner's external id. Iteration stops at the first error.
	ExportSubmissions(ctx context.Context, fn func(participantID string, submission *Submission) error) error
}
