// Package preorder holds pre-order products and pre-order records
package preorder

import (
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models"

	"github.com/shopspring/decimal"
)

// PreOrderProduct a product accepting reservations before release
type PreOrderProduct struct {
	ID                  uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                string          `gorm:"type:varchar(255)" json:"name"`
	Description         string          `gorm:"type:text" json:"description"`
	Price               decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ExpectedReleaseDate time.Time       `json:"expected_release_date"`
	PreOrderStartDate   time.Time       `gorm:"column:preorder_start_date" json:"preorder_start_date"`
	PreOrderEndDate     time.Time       `gorm:"column:preorder_end_date" json:"preorder_end_date"`
	MaxPreOrderQuantity uint64          `gorm:"column:max_preorder_quantity;default:100" json:"max_preorder_quantity"`
	CurrentPreOrders    uint64          `gorm:"column:current_preorders;default:0" json:"current_preorders"`
	IsActive            bool            `gorm:"default:true;index" json:"is_active"`

	models.CommonTimestampsField
}

// TableName table name
func (PreOrderProduct) TableName() string {
	return "preorder_products"
}

// PreOrder a confirmed pre-order
type PreOrder struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint64          `gorm:"index" json:"user_id"`
	Status        string          `gorm:"type:varchar(20);default:Pending" json:"status"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`
	Address       string          `gorm:"type:text" json:"address"`
	Phone         string          `gorm:"type:varchar(15)" json:"phone"`
	PaymentMethod string          `gorm:"type:varchar(20);default:SSLCommerz" json:"payment_method"`

	Items []PreOrderItem `gorm:"foreignKey:PreOrderID" json:"items,omitempty"`

	models.CommonTimestampsField
}

// TableName table name
func (PreOrder) TableName() string {
	return "preorders"
}

// PreOrderItem one reserved line
type PreOrderItem struct {
	ID                uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	PreOrderID        uint64          `gorm:"column:preorder_id;index;not null" json:"preorder_id"`
	PreOrderProductID uint64          `gorm:"column:preorder_product_id;index" json:"preorder_product_id"`
	Quantity          uint64          `gorm:"default:1" json:"quantity"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`

	models.CommonTimestampsField
}

// TableName table name
func (PreOrderItem) TableName() string {
	return "preorder_items"
}
