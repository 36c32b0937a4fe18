package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreateOrder(ctx context.Context, order *domain.PaymentOrder) error {
	model := mappers.ToGORMPaymentOrder(order)
	if err := postgres.Conn(ctx, r.DB).Create(model).Error; err != nil {
		return fmt.Errorf("create payment order: %w", translateError(err))
	}
	order.ID = model.ID
	order.CreatedAt = model.CreatedAt
	return nil
}

func (r *DefaultPaymentRepository) GetOrderByOrderID(ctx context.Context, orderID string) (*domain.PaymentOrder, error) {
	var model models.PaymentOrderModel
	if err := postgres.Conn(ctx, r.DB).First(&model, "order_id = ?", orderID).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainPaymentOrder(&model), nil
}

func (r *DefaultPaymentRepository) GetOpenOrder(ctx context.Context, participantKey int64) (*domain.PaymentOrder, error) {
	var model models.PaymentOrderModel
	if err := postgres.Conn(ctx, r.DB).
		Where("participant_key = ? AND status <> ?", participantKey, domain.OrderStatusPaid).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return mappers.ToDomainPaymentOrder(&model), nil
}

func (r *DefaultPaymentRepository) MarkOrderPaid(ctx context.Context, orderID, paymentID, signature string, paidAt time.Time) (bool, error) {
	res := postgres.Conn(ctx, r.DB).
		Model(&models.PaymentOrderModel{}).
		Where("order_id = ? AND status <> ?", orderID, domain.OrderStatusPaid).
		Updates(map[string]interface{}{
			"status":     domain.OrderStatusPaid,
			"payment_id": paymentID,
			"signature":  signature,
			"paid_at":    paidAt,
			"updated_at": paidAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
