package handlers

import (
	"net/http"

	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/cognit-service/internal/usecase"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RewardHandler struct {
	log           *zap.Logger
	RewardUsecase usecase.RewardUsecase
}

func NewRewardHandler(log *zap.Logger, rewardUsecase usecase.RewardUsecase) *RewardHandler {
	return &RewardHandler{log: log, RewardUsecase: rewardUsecase}
}

func (h *RewardHandler) GetRewardStatus(c *gin.Context) {
	out, err := h.RewardUsecase.GetRewardStatus(c.Request.Context(), c.Param("participant_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := response.RewardStatusResponse{
		IsWinner:         out.IsWinner,
		RewardAmount:     out.RewardAmount,
		TotalWords:       out.TotalWords,
		SurveyRounds:     out.SurveyRounds,
		PriorityEligible: out.PriorityEligible,
	}
	if out.Status != nil {
		status := string(*out.Status)
		resp.Status = &status
	}
	c.JSON(http.StatusOK, resp)
}

// SelectWinner answers 200 for every lottery outcome, cooldown included.
func (h *RewardHandler) SelectWinner(c *gin.Context) {
	var req request.ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	out, err := h.RewardUsecase.SelectWinner(c.Request.Context(), req.ParticipantID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.RewardSelectResponse{
		Selected:       out.Selected,
		RewardAmount:   out.RewardAmount,
		AlreadyWinner:  out.AlreadyWinner,
		CooldownActive: out.CooldownActive,
		RetryAfter:     out.RetryAfter,
	})
}
