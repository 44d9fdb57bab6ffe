// Package repositories holds thin data-access wrappers over GORM
package repositories

import (
	"context"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/paymentorder"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/database"

	"gorm.io/gorm"
)

// PaymentOrderRepository payment ledger access
type PaymentOrderRepository struct {
	db *gorm.DB
}

// NewPaymentOrderRepository creates the repository
func NewPaymentOrderRepository() *PaymentOrderRepository {
	return &PaymentOrderRepository{
		db: database.DB,
	}
}

// Create persists a payment order
func (r *PaymentOrderRepository) Create(ctx context.Context, order *paymentorder.PaymentOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// Update saves a payment order
func (r *PaymentOrderRepository) Update(ctx context.Context, order *paymentorder.PaymentOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// Get loads a payment order by id
func (r *PaymentOrderRepository) Get(ctx context.Context, id uint64) (*paymentorder.PaymentOrder, error) {
	var order paymentorder.PaymentOrder
	err := r.db.WithContext(ctx).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListRecent returns the newest payment orders, for the operator listing
func (r *PaymentOrderRepository) ListRecent(ctx context.Context, limit int) ([]paymentorder.PaymentOrder, error) {
	var orders []paymentorder.PaymentOrder
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

// CreateTransaction persists a gateway transaction attempt
func (r *PaymentOrderRepository) CreateTransaction(ctx context.Context, tx *paymentorder.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// UpdateTransaction saves a gateway transaction
func (r *PaymentOrderRepository) UpdateTransaction(ctx context.Context, tx *paymentorder.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

// LatestTransactionByTranID returns the most recent transaction for a
// gateway transaction id. Several attempts may share a root order; ties
// break by creation time, newest first.
func (r *PaymentOrderRepository) LatestTransactionByTranID(ctx context.Context, tranID string) (*paymentorder.Transaction, error) {
	var tx paymentorder.Transaction
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", tranID).
		Order("created_at DESC").
		First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
