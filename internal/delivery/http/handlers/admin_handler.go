package handlers

import (
	"net/http"

	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/cognit-service/internal/usecase"
	submissiondto "github.com/LavaJover/cognit-service/internal/usecase/dto/submission"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	log               *zap.Logger
	SubmissionUsecase usecase.SubmissionUsecase
}

func NewAdminHandler(log *zap.Logger, submissionUsecase usecase.SubmissionUsecase) *AdminHandler {
	return &AdminHandler{log: log, SubmissionUsecase: submissionUsecase}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	out, err := h.SubmissionUsecase.GetSummary(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.StatsResponse{
		TotalSubmissions:  out.TotalSubmissions,
		AvgWordCount:      out.AvgWordCount,
		AttentionFailRate: out.AttentionFailRate,
	})
}

func (h *AdminHandler) UpsertAttentionCheck(c *gin.Context) {
	var req request.AttentionCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	if err := h.SubmissionUsecase.UpsertAttentionCheck(c.Request.Context(), &submissiondto.UpsertAttentionCheckInput{
		ImageID:      req.ImageID,
		ExpectedTerm: req.ExpectedTerm,
		Strict:       req.Strict,
		IsActive:     isActive,
	}); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.StatusResponse{Status: "ok"})
}

func (h *AdminHandler) ExportSubmissions(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=submissions.csv")

	if err := h.SubmissionUsecase.ExportSubmissions(c.Request.Context(), c.Writer); err != nil {
		// Once rows are on the wire the status is already committed.
		if c.Writer.Written() {
			h.log.Error("submission export aborted", zap.Error(err))
			return
		}
		c.Writer.Header().Del("Content-Disposition")
		c.Writer.Header().Del("Content-Type")
		writeError(c, h.log, err)
	}
}
