package handlers

import (
	"io"
	"net/http"

	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/cognit-service/internal/usecase"
	paymentdto "github.com/LavaJover/cognit-service/internal/usecase/dto/payment"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	WebhookSignatureHeader = "X-Razorpay-Signature"
	maxWebhookBodyBytes    = 1 << 20
)

type PaymentHandler struct {
	log            *zap.Logger
	PaymentUsecase usecase.PaymentUsecase
}

func NewPaymentHandler(log *zap.Logger, paymentUsecase usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{log: log, PaymentUsecase: paymentUsecase}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req request.ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	out, err := h.PaymentUsecase.CreateOrder(c.Request.Context(), req.ParticipantID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.OrderResponse{
		OrderID:  out.OrderID,
		Amount:   out.Amount,
		Currency: out.Currency,
	})
}

func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	out, err := h.PaymentUsecase.VerifyPayment(c.Request.Context(), &paymentdto.VerifyPaymentInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.StatusResponse{Status: out.Status})
}

// Webhook reads the raw body because the signature covers the exact bytes the
// gateway sent.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		badRequest(c, err)
		return
	}

	out, err := h.PaymentUsecase.HandleWebhook(c.Request.Context(), body, c.GetHeader(WebhookSignatureHeader))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.StatusResponse{Status: out.Status})
}
