package rewarddto

import "github.com/LavaJover/cognit-service/internal/domain"

// SelectOutput is the lottery outcome. A cooldown is reported here as data,
// never as an error.
type SelectOutput struct {
	Selected       bool
	RewardAmount   *float64
	AlreadyWinner  bool
	CooldownActive bool
	RetryAfter     *int
}

type StatusOutput struct {
	IsWinner         bool
	RewardAmount     *float64
	Status           *domain.RewardStatus
	TotalWords       int64
	SurveyRounds     int64
	PriorityEligible bool
}
