package models

import (
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
)

type PaymentOrderModel struct {
	ID             int64              `gorm:"primaryKey;autoIncrement"`
	ParticipantKey int64              `gorm:"not null;index:idx_payment_orders_participant_status"`
	Participant    *ParticipantModel  `gorm:"foreignKey:ParticipantKey;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	OrderID        string             `gorm:"size:64;not null;uniqueIndex:idx_payment_orders_order_id"`
	Receipt        string             `gorm:"size:64;not null;uniqueIndex:idx_payment_orders_receipt"`
	Amount         int64              `gorm:"not null"`
	Currency       string             `gorm:"size:8;not null"`
	Status         domain.OrderStatus `gorm:"size:16;not null;index:idx_payment_orders_participant_status"`
	PaymentID      string             `gorm:"size:64"`
	Signature      string             `gorm:"size:128"`
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PaymentOrderModel) TableName() string {
	return "payment_orders"
}
