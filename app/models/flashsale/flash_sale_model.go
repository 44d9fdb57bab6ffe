// Package flashsale holds time-boxed discount products and their orders
package flashsale

import (
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models"

	"github.com/shopspring/decimal"
)

// FlashSaleProduct a product sold at a discount inside a time window
type FlashSaleProduct struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"type:varchar(255)" json:"name"`
	DiscountType  DiscountType    `gorm:"type:varchar(10);default:percent" json:"discount_type"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"original_price"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_value"`
	Stock         uint64          `gorm:"default:1" json:"stock"`
	Available     bool            `gorm:"default:true;index" json:"available"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`

	models.CommonTimestampsField
}

// TableName table name
func (FlashSaleProduct) TableName() string {
	return "flash_sale_products"
}

// FlashSaleOrder a confirmed flash sale purchase
type FlashSaleOrder struct {
	ID         uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64            `gorm:"index" json:"user_id"`
	ProductID  uint64            `gorm:"index" json:"product_id"`
	Product    *FlashSaleProduct `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   uint64            `gorm:"default:1" json:"quantity"`
	Price      decimal.Decimal   `gorm:"type:decimal(10,2)" json:"price"`
	TotalPrice decimal.Decimal   `gorm:"type:decimal(10,2)" json:"total_price"`
	Address    string            `gorm:"type:text" json:"address"`
	Phone      string            `gorm:"type:varchar(15)" json:"phone"`
	Status     string            `gorm:"type:varchar(20);default:Pending" json:"status"`

	models.CommonTimestampsField
}

// TableName table name
func (FlashSaleOrder) TableName() string {
	return "flash_sale_orders"
}
