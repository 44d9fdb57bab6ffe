// Package product holds the catalog and cart models
package product

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models"

	"github.com/shopspring/decimal"
)

// Category product category
type Category struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex" json:"name"`
	Slug string `gorm:"type:varchar(100);uniqueIndex" json:"slug"`
}

// TableName table name
func (Category) TableName() string {
	return "categories"
}

// Product regular catalog product
type Product struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  uint64          `gorm:"index" json:"category_id"`
	Category    *Category       `json:"category,omitempty"`
	Name        string          `gorm:"type:varchar(255)" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Stock       uint64          `json:"stock"`
	IsAvailable bool            `gorm:"default:true;index" json:"is_available"`

	models.CommonTimestampsField
}

// TableName table name
func (Product) TableName() string {
	return "products"
}

// CartItem one cart line, unique per user + product type + product
type CartItem struct {
	ID          uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64      `gorm:"index;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductType ProductType `gorm:"type:varchar(20);default:regular;uniqueIndex:idx_cart_user_product" json:"product_type"`
	ProductID   uint64      `gorm:"uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity    uint64      `gorm:"default:1" json:"quantity"`

	Product *Product `json:"product,omitempty"`

	models.CommonTimestampsField
}

// TableName table name
func (CartItem) TableName() string {
	return "cart_items"
}
