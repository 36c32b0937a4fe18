package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	publisher "github.com/LavaJover/cognit-service/internal/infrastructure/kafka"
	"github.com/LavaJover/cognit-service/internal/infrastructure/metrics"
	paymentdto "github.com/LavaJover/cognit-service/internal/usecase/dto/payment"
	"github.com/google/uuid"
	nanoid "github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

const (
	webhookEventPaymentCaptured = "payment.captured"
	webhookEventOrderPaid       = "order.paid"

	transitionSourceVerify  = "verify"
	transitionSourceWebhook = "webhook"

	receiptSuffixLength = 12
)

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, participantID string) (*paymentdto.OrderOutput, error)
	VerifyPayment(ctx context.Context, input *paymentdto.VerifyPaymentInput) (*paymentdto.VerifyOutput, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) (*paymentdto.WebhookOutput, error)
}

type PaymentPolicy struct {
	Amount   int64
	Currency string
}

type DefaultPaymentUsecase struct {
	TxManager       domain.TxManager
	ParticipantRepo domain.ParticipantRepository
	PaymentRepo     domain.PaymentRepository
	Gateway         domain.PaymentGateway
	Audit           domain.AuditLogger
	Events          *EventSink
	Metrics         *metrics.EngineMetrics
	Policy          PaymentPolicy
	log             *zap.Logger
	now             func() time.Time
	receiptID       func() string
}

func NewDefaultPaymentUsecase(
	txManager domain.TxManager,
	participantRepo domain.ParticipantRepository,
	paymentRepo domain.PaymentRepository,
	gateway domain.PaymentGateway,
	audit domain.AuditLogger,
	events *EventSink,
	engineMetrics *metrics.EngineMetrics,
	policy PaymentPolicy,
	log *zap.Logger,
) (*DefaultPaymentUsecase, error) {
	generator, err := nanoid.Standard(receiptSuffixLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create receipt id generator: %w", err)
	}
	return &DefaultPaymentUsecase{
		TxManager:       txManager,
		ParticipantRepo: participantRepo,
		PaymentRepo:     paymentRepo,
		Gateway:         gateway,
		Audit:           audit,
		Events:          events,
		Metrics:         engineMetrics,
		Policy:          policy,
		log:             log,
		now:             func() time.Time { return time.Now().UTC() },
		receiptID:       generator,
	}, nil
}

// CreateOrder returns the participant's open order when there is one, so a
// retried checkout never opens a second order at the gateway.
func (uc *DefaultPaymentUsecase) CreateOrder(ctx context.Context, participantID string) (*paymentdto.OrderOutput, error) {
	var out *paymentdto.OrderOutput

	err := uc.TxManager.WithinTransaction(ctx, func(ctx context.Context) error {
		participant, err := uc.ParticipantRepo.LockParticipantByExternalID(ctx, participantID)
		if err != nil {
			return err
		}
		if participant.PaymentStatus == domain.PaymentStatusPaid {
			return fmt.Errorf("%w: payment already completed", domain.ErrConflict)
		}

		open, err := uc.PaymentRepo.GetOpenOrder(ctx, participant.ID)
		if err == nil {
			out = &paymentdto.OrderOutput{
				OrderID:  open.OrderID,
				Amount:   open.Amount,
				Currency: open.Currency,
				Reused:   true,
			}
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		receipt := "rcpt_" + strconv.FormatInt(participant.ID, 10) + "_" + uc.receiptID()
		gatewayOrder, err := uc.Gateway.CreateOrder(ctx, uc.Policy.Amount, uc.Policy.Currency, receipt)
		if err != nil {
			return fmt.Errorf("failed to create gateway order: %w", err)
		}

		order := &domain.PaymentOrder{
			ParticipantKey: participant.ID,
			OrderID:        gatewayOrder.ID,
			Receipt:        receipt,
			Amount:         gatewayOrder.Amount,
			Currency:       gatewayOrder.Currency,
			Status:         domain.OrderStatusCreated,
			CreatedAt:      uc.now(),
		}
		if err := uc.PaymentRepo.CreateOrder(ctx, order); err != nil {
			return err
		}
		if err := uc.ParticipantRepo.UpdatePaymentStatus(ctx, participant.ID, domain.PaymentStatusCreated); err != nil {
			return err
		}

		out = &paymentdto.OrderOutput{
			OrderID:  order.OrderID,
			Amount:   order.Amount,
			Currency: order.Currency,
		}
		return nil
	})
	if err != nil {
		uc.Metrics.PaymentOrdersTotal.WithLabelValues("error").Inc()
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrConflict) {
			uc.log.Error("failed to create payment order", zap.String("participant_id", participantID), zap.Error(err))
		}
		return nil, err
	}

	if out.Reused {
		uc.Metrics.PaymentOrdersTotal.WithLabelValues("reused").Inc()
	} else {
		uc.Metrics.PaymentOrdersTotal.WithLabelValues("created").Inc()
		uc.log.Info("payment order created", zap.String("participant_id", participantID), zap.String("order_id", out.OrderID))
	}
	return out, nil
}

func (uc *DefaultPaymentUsecase) VerifyPayment(ctx context.Context, input *paymentdto.VerifyPaymentInput) (*paymentdto.VerifyOutput, error) {
	if input == nil || input.OrderID == "" || input.PaymentID == "" || input.Signature == "" {
		return nil, fmt.Errorf("%w: order_id, payment_id and signature are required", domain.ErrValidation)
	}

	if _, err := uc.PaymentRepo.GetOrderByOrderID(ctx, input.OrderID); err != nil {
		return nil, err
	}
	if !uc.Gateway.VerifyPaymentSignature(input.OrderID, input.PaymentID, input.Signature) {
		uc.log.Warn("payment signature mismatch", zap.String("order_id", input.OrderID))
		return nil, domain.ErrInvalidSignature
	}

	if _, err := uc.markPaid(ctx, input.OrderID, input.PaymentID, input.Signature, transitionSourceVerify); err != nil {
		return nil, err
	}
	return &paymentdto.VerifyOutput{Status: "verified"}, nil
}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
		Order struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

// HandleWebhook acknowledges every authentic event. Only payment.captured and
// order.paid can change state, and a replay of either is a no-op.
func (uc *DefaultPaymentUsecase) HandleWebhook(ctx context.Context, body []byte, signature string) (*paymentdto.WebhookOutput, error) {
	if signature == "" || !uc.Gateway.VerifyWebhookSignature(body, signature) {
		uc.log.Warn("webhook signature mismatch")
		return nil, domain.ErrInvalidSignature
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed webhook body", domain.ErrValidation)
	}

	ack := &paymentdto.WebhookOutput{Status: "ok"}
	switch envelope.Event {
	case webhookEventPaymentCaptured, webhookEventOrderPaid:
	default:
		uc.log.Debug("ignoring webhook event", zap.String("event", envelope.Event))
		return ack, nil
	}

	orderID := envelope.Payload.Payment.Entity.OrderID
	if orderID == "" {
		orderID = envelope.Payload.Order.Entity.ID
	}
	if strings.TrimSpace(orderID) == "" {
		uc.log.Warn("webhook event without order id", zap.String("event", envelope.Event))
		return ack, nil
	}

	applied, err := uc.markPaid(ctx, orderID, envelope.Payload.Payment.Entity.ID, "", transitionSourceWebhook)
	if err != nil {
		return nil, err
	}
	ack.Applied = applied
	return ack, nil
}

// markPaid performs the conditional created->paid transition. The participant
// is updated only by the call whose UPDATE actually changed the order row.
func (uc *DefaultPaymentUsecase) markPaid(ctx context.Context, orderID, paymentID, signature, source string) (bool, error) {
	var (
		applied bool
		order   *domain.PaymentOrder
	)
	now := uc.now()

	err := uc.TxManager.WithinTransaction(ctx, func(ctx context.Context) error {
		changed, err := uc.PaymentRepo.MarkOrderPaid(ctx, orderID, paymentID, signature, now)
		if err != nil || !changed {
			return err
		}
		order, err = uc.PaymentRepo.GetOrderByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := uc.ParticipantRepo.UpdatePaymentStatus(ctx, order.ParticipantKey, domain.PaymentStatusPaid); err != nil {
			return err
		}
		key := order.ParticipantKey
		if err := uc.Audit.Log(ctx, domain.AuditEntry{
			ParticipantKey: &key,
			Action:         domain.AuditPaymentPaid,
			Details:        fmt.Sprintf("order_id=%s payment_id=%s source=%s", orderID, paymentID, source),
			CreatedAt:      now,
		}); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		uc.log.Error("failed to apply payment transition",
			zap.String("order_id", orderID),
			zap.String("source", source),
			zap.Error(err),
		)
		return false, err
	}

	uc.Metrics.PaymentTransitionsTotal.WithLabelValues(source, strconv.FormatBool(applied)).Inc()
	if !applied {
		return false, nil
	}

	uc.log.Info("payment marked paid", zap.String("order_id", orderID), zap.String("source", source))
	uc.Events.emit(publisher.TopicPaymentPaid, order.ParticipantKey, publisher.PaymentPaidEvent{
		EventID:        uuid.NewString(),
		ParticipantKey: order.ParticipantKey,
		OrderID:        order.OrderID,
		PaymentID:      paymentID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		Source:         source,
		OccurredAt:     now,
	})
	return true, nil
}
