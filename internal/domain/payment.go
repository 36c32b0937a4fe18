package domain

import (
	"context"
	"time"
)

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
)

type PaymentOrder struct {
	ID             int64
	ParticipantKey int64
	OrderID        string
	Receipt        string
	Amount         int64
	Currency       string
	Status         OrderStatus
	PaymentID      string
	Signature      string
	PaidAt         *time.Time
	CreatedAt      time.Time
}

type PaymentRepository interface {
	CreateOrder(ctx context.Context, order *PaymentOrder) error
	GetOrderByOrderID(ctx context.Context, orderID string) (*PaymentOrder, error)
	GetOpenOrder(ctx context.Context, participantKey int64) (*PaymentOrder, error)
	// MarkOrderPaid moves the order to paid unless it is already paid and
	// reports whether this call performed the transition.
	MarkOrderPaid(ctx context.Context, orderID, paymentID, signature string, paidAt time.Time) (bool, error)
}

// GatewayOrder is the gateway's view of a freshly created order.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}
