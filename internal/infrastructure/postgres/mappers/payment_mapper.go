package mappers

import (
	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
)

func ToGORMPaymentOrder(order *domain.PaymentOrder) *models.PaymentOrderModel {
	return &models.PaymentOrderModel{
		ID:             order.ID,
		ParticipantKey: order.ParticipantKey,
		OrderID:        order.OrderID,
		Receipt:        order.Receipt,
		Amount:         order.Amount,
		Currency:       order.Currency,
		Status:         order.Status,
		PaymentID:      order.PaymentID,
		Signature:      order.Signature,
		PaidAt:         order.PaidAt,
		CreatedAt:      order.CreatedAt,
	}
}

func ToDomainPaymentOrder(model *models.PaymentOrderModel) *domain.PaymentOrder {
	return &domain.PaymentOrder{
		ID:             model.ID,
		ParticipantKey: model.ParticipantKey,
		OrderID:        model.OrderID,
		Receipt:        model.Receipt,
		Amount:         model.Amount,
		Currency:       model.Currency,
		Status:         model.Status,
		PaymentID:      model.PaymentID,
		Signature:      model.Signature,
		PaidAt:         model.PaidAt,
		CreatedAt:      model.CreatedAt,
	}
}
