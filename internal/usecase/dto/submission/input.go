package submissiondto

import "github.com/LavaJover/cognit-service/internal/domain"

type SubmitInput struct {
	ParticipantID    string
	ImageID          string
	Description      string
	Rating           int
	Feedback         string
	TimeSpentSeconds *float64
	IsSurvey         bool
	IsPractice       bool
	Workload         domain.WorkloadRatings
	SessionMetadata
}

type SessionMetadata struct {
	SessionID string
	UserAgent string
	ClientIP  string
}

type UpsertAttentionCheckInput struct {
	ImageID      string
	ExpectedTerm string
	Strict       bool
	IsActive     bool
}
