package response

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type SubmitResponse struct {
	Status          string  `json:"status"`
	SubmissionID    int64   `json:"submission_id"`
	WordCount       int     `json:"word_count"`
	AttentionPassed *bool   `json:"attention_passed"`
	QualityScore    float64 `json:"quality_score"`
}

type RewardSelectResponse struct {
	Selected       bool     `json:"selected"`
	RewardAmount   *float64 `json:"reward_amount,omitempty"`
	AlreadyWinner  bool     `json:"already_winner,omitempty"`
	CooldownActive bool     `json:"cooldown_active,omitempty"`
	RetryAfter     *int     `json:"retry_after,omitempty"`
}

type RewardStatusResponse struct {
	IsWinner         bool     `json:"is_winner"`
	RewardAmount     *float64 `json:"reward_amount,omitempty"`
	Status           *string  `json:"status,omitempty"`
	TotalWords       int64    `json:"total_words"`
	SurveyRounds     int64    `json:"survey_rounds"`
	PriorityEligible bool     `json:"priority_eligible"`
}

type OrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ParticipantResponse struct {
	ParticipantID   string     `json:"participant_id"`
	SessionID       string     `json:"session_id,omitempty"`
	Username        string     `json:"username,omitempty"`
	Gender          string     `json:"gender,omitempty"`
	Age             int        `json:"age,omitempty"`
	Place           string     `json:"place,omitempty"`
	NativeLanguage  string     `json:"native_language,omitempty"`
	PriorExperience string     `json:"prior_experience,omitempty"`
	ConsentGiven    bool       `json:"consent_given"`
	ConsentAt       *time.Time `json:"consent_at,omitempty"`
	PaymentStatus   string     `json:"payment_status"`
	CreatedAt       time.Time  `json:"created_at"`
}

type SubmissionResponse struct {
	ID               int64     `json:"id"`
	ImageID          string    `json:"image_id"`
	Description      string    `json:"description"`
	WordCount        int       `json:"word_count"`
	Rating           int       `json:"rating"`
	Feedback         string    `json:"feedback,omitempty"`
	TimeSpentSeconds *float64  `json:"time_spent_seconds"`
	IsSurvey         bool      `json:"is_survey"`
	IsPractice       bool      `json:"is_practice"`
	IsAttention      bool      `json:"is_attention"`
	AttentionPassed  *bool     `json:"attention_passed"`
	TooFast          bool      `json:"too_fast"`
	QualityScore     float64   `json:"quality_score"`
	NasaMental       *int      `json:"nasa_mental,omitempty"`
	NasaPhysical     *int      `json:"nasa_physical,omitempty"`
	NasaTemporal     *int      `json:"nasa_temporal,omitempty"`
	NasaPerformance  *int      `json:"nasa_performance,omitempty"`
	NasaEffort       *int      `json:"nasa_effort,omitempty"`
	NasaFrustration  *int      `json:"nasa_frustration,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type SubmissionsResponse struct {
	ParticipantID string                `json:"participant_id"`
	Submissions   []*SubmissionResponse `json:"submissions"`
}

type StatsResponse struct {
	TotalSubmissions  int64   `json:"total_submissions"`
	AvgWordCount      float64 `json:"avg_word_count"`
	AttentionFailRate float64 `json:"attention_fail_rate"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
