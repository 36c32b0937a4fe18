package handlers

import (
	"errors"
	"net/http"

	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

// RequestIDKey is the gin context key holding the per-request id.
const RequestIDKey = "request_id"

// statusFor maps domain sentinels to HTTP status codes. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFlagged):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrPaymentRequired):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrConsentRequired):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, log *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Error(err),
		)
		c.JSON(status, response.ErrorResponse{Error: internalErrorMessage})
		return
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
}
