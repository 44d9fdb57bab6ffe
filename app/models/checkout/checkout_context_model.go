// Package checkout holds the durable checkout context: a typed record of
// which domain flow a PaymentOrder pays for, persisted at initiation time
// and consumed exactly once when the gateway confirms payment.
package checkout

import (
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models"
)

// Context durable checkout context, one per PaymentOrder
type Context struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentOrderID uint64 `gorm:"uniqueIndex;not null" json:"payment_order_id"`
	UserID         uint64 `gorm:"index" json:"user_id"`
	Kind           Kind   `gorm:"type:varchar(20);index" json:"kind"`

	Address       string `gorm:"type:text" json:"address"`
	Phone         string `gorm:"type:varchar(15)" json:"phone"`
	PaymentMethod string `gorm:"type:varchar(20)" json:"payment_method"`

	// Items snapshot for the cart and single product kinds, captured at
	// initiation so a later catalog change cannot alter what was paid for.
	Items Items `gorm:"type:json" json:"items"`

	// Rental fields
	RentalProductID uint64     `json:"rental_product_id,omitempty"`
	RentalStartDate *time.Time `json:"rental_start_date,omitempty"`
	RentalEndDate   *time.Time `json:"rental_end_date,omitempty"`

	// Flash sale fields
	FlashSaleProductID uint64 `json:"flash_sale_product_id,omitempty"`
	FlashSaleQuantity  uint64 `json:"flash_sale_quantity,omitempty"`

	// Pre-order fields
	PreOrderProductID uint64 `json:"preorder_product_id,omitempty"`
	PreOrderQuantity  uint64 `json:"preorder_quantity,omitempty"`

	// ConsumedAt is set exactly once, when the domain commit runs. A
	// duplicate gateway callback finds it non-null and skips the commit.
	ConsumedAt *time.Time `gorm:"index" json:"consumed_at,omitempty"`

	models.CommonTimestampsField
}

// TableName table name
func (Context) TableName() string {
	return "checkout_contexts"
}
