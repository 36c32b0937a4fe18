package postgres

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Conn returns the transaction bound to ctx, or db scoped to ctx when the
// call is not part of a transaction.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

type TxManager struct {
	DB *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{DB: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// Nested calls join the outer transaction.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
