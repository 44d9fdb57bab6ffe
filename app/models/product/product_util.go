package product

import "github.com/shopspring/decimal"

// ProductType discriminates which catalog a cart line points at
type ProductType string

const (
	TypeRegular   ProductType = "regular"
	TypePreOrder  ProductType = "preorder"
	TypeFlashSale ProductType = "flash_sale"
)

// LineTotal quantity × unit price for a regular cart line
func (c *CartItem) LineTotal() decimal.Decimal {
	if c.Product == nil {
		return decimal.Zero
	}
	return c.Product.Price.Mul(decimal.NewFromUint64(c.Quantity))
}

// InStock reports whether the product can cover the requested quantity
func (p *Product) InStock(quantity uint64) bool {
	return p.IsAvailable && p.Stock >= quantity
}
