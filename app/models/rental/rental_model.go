// Package rental holds rental products and rental orders
package rental

import (
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models"

	"github.com/shopspring/decimal"
)

// RentalProduct a product offered for daily rental
type RentalProduct struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string          `gorm:"type:varchar(255)" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	RentPricePerDay decimal.Decimal `gorm:"type:decimal(10,2)" json:"rent_price_per_day"`
	Stock           uint64          `gorm:"default:1" json:"stock"`
	Available       bool            `gorm:"default:true;index" json:"available"`

	models.CommonTimestampsField
}

// TableName table name
func (RentalProduct) TableName() string {
	return "rental_products"
}

// RentalOrder a confirmed rental booking
type RentalOrder struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint64          `gorm:"index" json:"user_id"`
	ProductID       uint64          `gorm:"index" json:"product_id"`
	Product         *RentalProduct  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	RentalStartDate time.Time       `json:"rental_start_date"`
	RentalEndDate   time.Time       `json:"rental_end_date"`
	TotalRentPrice  decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_rent_price"`
	Status          string          `gorm:"type:varchar(20);default:Pending" json:"status"`

	models.CommonTimestampsField
}

// TableName table name
func (RentalOrder) TableName() string {
	return "rental_orders"
}
