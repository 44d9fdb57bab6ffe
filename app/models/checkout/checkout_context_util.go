package checkout

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// Kind discriminates which domain flow a context pays for. The kinds are
// mutually exclusive by construction of the initiation step.
type Kind string

const (
	KindCart          Kind = "cart"
	KindSingleProduct Kind = "single_product"
	KindRental        Kind = "rental"
	KindFlashSale     Kind = "flash_sale"
	KindPreOrder      Kind = "preorder"
)

// Item one priced line inside the snapshot. ItemKind tells which catalog
// the product id points at, mirroring the cart line's product type.
type Item struct {
	ProductID uint64          `json:"product_id"`
	ItemKind  string          `json:"kind"`
	Name      string          `json:"name"`
	Quantity  uint64          `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Items JSON column type for the item snapshot
type Items []Item

// Value implements driver.Valuer
func (i Items) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	return json.Marshal(i)
}

// Scan implements sql.Scanner
func (i *Items) Scan(value interface{}) error {
	if value == nil {
		*i = Items{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("invalid type for checkout items")
	}

	return json.Unmarshal(bytes, i)
}

// Total sums quantity × unit price over the snapshot
func (i Items) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromUint64(item.Quantity)))
	}
	return total
}

// Validate checks the context is internally consistent for its kind
func (c *Context) Validate() error {
	switch c.Kind {
	case KindCart, KindSingleProduct:
		if len(c.Items) == 0 {
			return errors.New("item snapshot cannot be empty")
		}
	case KindRental:
		if c.RentalProductID == 0 || c.RentalStartDate == nil || c.RentalEndDate == nil {
			return errors.New("rental fields are incomplete")
		}
		if !c.RentalEndDate.After(*c.RentalStartDate) {
			return errors.New("rental end date must be after the start date")
		}
	case KindFlashSale:
		if c.FlashSaleProductID == 0 || c.FlashSaleQuantity == 0 {
			return errors.New("flash sale fields are incomplete")
		}
	case KindPreOrder:
		if c.PreOrderProductID == 0 || c.PreOrderQuantity == 0 {
			return errors.New("preorder fields are incomplete")
		}
	default:
		return errors.New("unknown checkout kind")
	}
	return nil
}

// IsConsumed reports whether the domain commit already ran
func (c *Context) IsConsumed() bool {
	return c.ConsumedAt != nil
}
