package repositories

import (
	"context"
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/checkout"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/database"

	"gorm.io/gorm"
)

// CheckoutContextRepository durable checkout context access
type CheckoutContextRepository struct {
	db *gorm.DB
}

// NewCheckoutContextRepository creates the repository
func NewCheckoutContextRepository() *CheckoutContextRepository {
	return &CheckoutContextRepository{
		db: database.DB,
	}
}

// Create persists a checkout context
func (r *CheckoutContextRepository) Create(ctx context.Context, checkoutCtx *checkout.Context) error {
	return r.db.WithContext(ctx).Create(checkoutCtx).Error
}

// GetByPaymentOrderID loads the context attached to a payment order
func (r *CheckoutContextRepository) GetByPaymentOrderID(ctx context.Context, paymentOrderID uint64) (*checkout.Context, error) {
	var checkoutCtx checkout.Context
	err := r.db.WithContext(ctx).
		Where("payment_order_id = ?", paymentOrderID).
		First(&checkoutCtx).Error
	if err != nil {
		return nil, err
	}
	return &checkoutCtx, nil
}

// Claim marks the context consumed, exactly once. Returns false when
// another delivery already claimed it; the caller must then skip the
// domain commit.
func (r *CheckoutContextRepository) Claim(ctx context.Context, paymentOrderID uint64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&checkout.Context{}).
		Where("payment_order_id = ? AND consumed_at IS NULL", paymentOrderID).
		Update("consumed_at", time.Now())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Release clears the consumed mark, used when the domain commit failed
// and the operator wants to retry fulfillment.
func (r *CheckoutContextRepository) Release(ctx context.Context, paymentOrderID uint64) error {
	return r.db.WithContext(ctx).
		Model(&checkout.Context{}).
		Where("payment_order_id = ?", paymentOrderID).
		Update("consumed_at", nil).Error
}
