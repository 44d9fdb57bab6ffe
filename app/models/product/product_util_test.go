package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	item := CartItem{
		Quantity: 3,
		Product:  &Product{Price: decimal.RequireFromString("19.99")},
	}
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("59.97")))

	// a line whose product vanished contributes nothing
	item.Product = nil
	assert.True(t, item.LineTotal().IsZero())
}

func TestInStock(t *testing.T) {
	p := Product{Stock: 5, IsAvailable: true}
	assert.True(t, p.InStock(5))
	assert.False(t, p.InStock(6))

	p.IsAvailable = false
	assert.False(t, p.InStock(1))
}
