package submissiondto

import (
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
)

type SubmitOutput struct {
	SubmissionID    int64
	WordCount       int
	IsAttention     bool
	AttentionPassed *bool
	TooFast         bool
	QualityScore    float64
}

type Submission struct {
	ID               int64
	ImageID          string
	Description      string
	WordCount        int
	Rating           int
	Feedback         string
	TimeSpentSeconds *float64
	IsSurvey         bool
	IsPractice       bool
	IsAttention      bool
	AttentionPassed  *bool
	TooFastFlag      bool
	QualityScore     float64
	Workload         domain.WorkloadRatings
	CreatedAt        time.Time
}

type SummaryOutput struct {
	TotalSubmissions  int64
	AvgWordCount      float64
	AttentionFailRate float64
}
