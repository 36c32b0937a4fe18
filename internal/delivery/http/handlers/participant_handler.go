package handlers

import (
	"net/http"

	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/usecase"
	participantdto "github.com/LavaJover/cognit-service/internal/usecase/dto/participant"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ParticipantHandler struct {
	log                *zap.Logger
	ParticipantUsecase usecase.ParticipantUsecase
}

func NewParticipantHandler(log *zap.Logger, participantUsecase usecase.ParticipantUsecase) *ParticipantHandler {
	return &ParticipantHandler{log: log, ParticipantUsecase: participantUsecase}
}

func (h *ParticipantHandler) Register(c *gin.Context) {
	var req request.RegisterParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	participant, err := h.ParticipantUsecase.Register(c.Request.Context(), &participantdto.RegisterInput{
		ParticipantID:   req.ParticipantID,
		SessionID:       req.SessionID,
		Username:        req.Username,
		Gender:          req.Gender,
		Age:             req.Age,
		Place:           req.Place,
		NativeLanguage:  req.NativeLanguage,
		PriorExperience: req.PriorExperience,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toParticipantResponse(participant))
}

func (h *ParticipantHandler) GetParticipant(c *gin.Context) {
	participant, err := h.ParticipantUsecase.GetParticipant(c.Request.Context(), c.Param("participant_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toParticipantResponse(participant))
}

func (h *ParticipantHandler) RecordConsent(c *gin.Context) {
	var req request.ConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	participant, err := h.ParticipantUsecase.RecordConsent(c.Request.Context(), &participantdto.ConsentInput{
		ParticipantID: req.ParticipantID,
		ConsentGiven:  *req.ConsentGiven,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toParticipantResponse(participant))
}

func toParticipantResponse(p *domain.Participant) response.ParticipantResponse {
	return response.ParticipantResponse{
		ParticipantID:   p.ExternalID,
		SessionID:       p.SessionID,
		Username:        p.Username,
		Gender:          p.Gender,
		Age:             p.Age,
		Place:           p.Place,
		NativeLanguage:  p.NativeLanguage,
		PriorExperience: p.PriorExperience,
		ConsentGiven:    p.ConsentGiven,
		ConsentAt:       p.ConsentAt,
		PaymentStatus:   string(p.PaymentStatus),
		CreatedAt:       p.CreatedAt,
	}
}
