package handlers

import (
	"net/http"

	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/usecase"
	submissiondto "github.com/LavaJover/cognit-service/internal/usecase/dto/submission"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubmissionHandler struct {
	log               *zap.Logger
	SubmissionUsecase usecase.SubmissionUsecase
}

func NewSubmissionHandler(log *zap.Logger, submissionUsecase usecase.SubmissionUsecase) *SubmissionHandler {
	return &SubmissionHandler{log: log, SubmissionUsecase: submissionUsecase}
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req request.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	out, err := h.SubmissionUsecase.Submit(c.Request.Context(), &submissiondto.SubmitInput{
		ParticipantID:    req.ParticipantID,
		ImageID:          req.ImageID,
		Description:      req.Description,
		Rating:           req.Rating,
		Feedback:         req.Feedback,
		TimeSpentSeconds: req.TimeSpentSeconds,
		IsSurvey:         req.IsSurvey,
		IsPractice:       req.IsPractice,
		Workload: domain.WorkloadRatings{
			Mental:      req.NasaMental,
			Physical:    req.NasaPhysical,
			Temporal:    req.NasaTemporal,
			Performance: req.NasaPerformance,
			Effort:      req.NasaEffort,
			Frustration: req.NasaFrustration,
		},
		SessionMetadata: submissiondto.SessionMetadata{
			SessionID: req.SessionID,
			UserAgent: c.Request.UserAgent(),
			ClientIP:  c.ClientIP(),
		},
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, response.SubmitResponse{
		Status:          "ok",
		SubmissionID:    out.SubmissionID,
		WordCount:       out.WordCount,
		AttentionPassed: out.AttentionPassed,
		QualityScore:    out.QualityScore,
	})
}

func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	participantID := c.Param("participant_id")
	submissions, err := h.SubmissionUsecase.GetParticipantSubmissions(c.Request.Context(), participantID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := response.SubmissionsResponse{
		ParticipantID: participantID,
		Submissions:   make([]*response.SubmissionResponse, 0, len(submissions)),
	}
	for _, s := range submissions {
		resp.Submissions = append(resp.Submissions, &response.SubmissionResponse{
			ID:               s.ID,
			ImageID:          s.ImageID,
			Description:      s.Description,
			WordCount:        s.WordCount,
			Rating:           s.Rating,
			Feedback:         s.Feedback,
			TimeSpentSeconds: s.TimeSpentSeconds,
			IsSurvey:         s.IsSurvey,
			IsPractice:       s.IsPractice,
			IsAttention:      s.IsAttention,
			AttentionPassed:  s.AttentionPassed,
			TooFast:          s.TooFastFlag,
			QualityScore:     s.QualityScore,
			NasaMental:       s.Workload.Mental,
			NasaPhysical:     s.Workload.Physical,
			NasaTemporal:     s.Workload.Temporal,
			NasaPerformance:  s.Workload.Performance,
			NasaEffort:       s.Workload.Effort,
			NasaFrustration:  s.Workload.Frustration,
			CreatedAt:        s.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
