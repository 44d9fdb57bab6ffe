// Package paymentorder holds the provisional payment ledger: one
// PaymentOrder per checkout attempt, with one or more gateway
// Transactions attached to it.
package paymentorder

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PaymentOrder provisional monetary order, independent of which domain
// entity it pays for. Never deleted.
type PaymentOrder struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      *uint64         `gorm:"index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Currency    string          `gorm:"type:varchar(10);default:BDT" json:"currency"`
	Status      string          `gorm:"type:varchar(20);index;default:pending" json:"status"`
	Description string          `gorm:"type:varchar(255)" json:"description"`

	// FulfillmentError records a domain-commit failure that happened after
	// the payment was confirmed. The order stays paid; the case needs
	// manual resolution.
	FulfillmentError string `gorm:"type:text" json:"fulfillment_error,omitempty"`

	Transactions []Transaction `gorm:"foreignKey:PaymentOrderID" json:"transactions,omitempty"`

	models.CommonTimestampsField
}

// TableName table name
func (PaymentOrder) TableName() string {
	return "payment_orders"
}

// Transaction one gateway attempt against a PaymentOrder. A PaymentOrder
// may accumulate several attempts; at most one should end up successful.
type Transaction struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentOrderID uint64          `gorm:"index;not null" json:"payment_order_id"`
	PaymentOrder   *PaymentOrder   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Gateway        string          `gorm:"type:varchar(50)" json:"gateway"`
	TransactionID  string          `gorm:"type:varchar(255);index" json:"transaction_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	RawResponse    datatypes.JSON  `gorm:"type:json" json:"raw_response"`
	Success        bool            `gorm:"default:false" json:"success"`

	models.CommonTimestampsField
}

// TableName table name
func (Transaction) TableName() string {
	return "transactions"
}
