package request

type SubmitRequest struct {
	ParticipantID    string   `json:"participant_id" binding:"required"`
	ImageID          string   `json:"image_id" binding:"required"`
	Description      string   `json:"description"`
	Rating           int      `json:"rating"`
	Feedback         string   `json:"feedback"`
	TimeSpentSeconds *float64 `json:"time_spent_seconds"`
	IsSurvey         bool     `json:"is_survey"`
	IsPractice       bool     `json:"is_practice"`
	SessionID        string   `json:"session_id"`
	NasaMental       *int     `json:"nasa_mental"`
	NasaPhysical     *int     `json:"nasa_physical"`
	NasaTemporal     *int     `json:"nasa_temporal"`
	NasaPerformance  *int     `json:"nasa_performance"`
	NasaEffort       *int     `json:"nasa_effort"`
	NasaFrustration  *int     `json:"nasa_frustration"`
}

type ParticipantRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
}

type RegisterParticipantRequest struct {
	ParticipantID   string `json:"participant_id" binding:"required"`
	SessionID       string `json:"session_id"`
	Username        string `json:"username"`
	Gender          string `json:"gender"`
	Age             int    `json:"age"`
	Place           string `json:"place"`
	NativeLanguage  string `json:"native_language"`
	PriorExperience string `json:"prior_experience"`
}

type ConsentRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	ConsentGiven  *bool  `json:"consent_given" binding:"required"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

type AttentionCheckRequest struct {
	ImageID      string `json:"image_id" binding:"required"`
	ExpectedTerm string `json:"expected_term" binding:"required"`
	Strict       bool   `json:"strict"`
	IsActive     *bool  `json:"is_active"`
}
