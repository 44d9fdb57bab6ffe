// Package order holds the domain order created after payment success
package order

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models"

	"github.com/shopspring/decimal"
)

// Order a confirmed purchase. Created only after the gateway confirms
// payment; its status lifecycle is independent of the payment order's.
type Order struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint64          `gorm:"index" json:"user_id"`
	Status        string          `gorm:"type:varchar(20);default:Pending" json:"status"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`
	Address       string          `gorm:"type:text" json:"address"`
	Phone         string          `gorm:"type:varchar(15)" json:"phone"`
	PaymentMethod string          `gorm:"type:varchar(20);default:SSLCommerz" json:"payment_method"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`

	models.CommonTimestampsField
}

// TableName table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem one purchased line
type OrderItem struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint64          `gorm:"index;not null" json:"order_id"`
	ProductID uint64          `gorm:"index" json:"product_id"`
	Quantity  uint64          `gorm:"default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`

	models.CommonTimestampsField
}

// TableName table name
func (OrderItem) TableName() string {
	return "order_items"
}
