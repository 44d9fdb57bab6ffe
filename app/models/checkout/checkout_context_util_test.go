package checkout

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() Items {
	return Items{
		{ProductID: 1, ItemKind: "regular", Name: "Wireless Mouse", Quantity: 2, UnitPrice: decimal.RequireFromString("50.00")},
		{ProductID: 2, ItemKind: "regular", Name: "Mechanical Keyboard", Quantity: 1, UnitPrice: decimal.RequireFromString("50.00")},
	}
}

func TestItemsTotal(t *testing.T) {
	assert.True(t, sampleItems().Total().Equal(decimal.RequireFromString("150.00")))
	assert.True(t, Items{}.Total().IsZero())
}

func TestItemsValueScanRoundTrip(t *testing.T) {
	value, err := sampleItems().Value()
	require.NoError(t, err)

	var decoded Items
	require.NoError(t, decoded.Scan(value))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Wireless Mouse", decoded[0].Name)
	assert.True(t, decoded.Total().Equal(sampleItems().Total()))
}

func TestItemsScanNil(t *testing.T) {
	var decoded Items
	require.NoError(t, decoded.Scan(nil))
	assert.Empty(t, decoded)
}

func TestValidatePerKind(t *testing.T) {
	now := time.Now()
	later := now.AddDate(0, 0, 3)

	cases := []struct {
		name    string
		ctx     Context
		wantErr bool
	}{
		{"cart with items", Context{Kind: KindCart, Items: sampleItems()}, false},
		{"cart without items", Context{Kind: KindCart}, true},
		{"single product", Context{Kind: KindSingleProduct, Items: sampleItems()[:1]}, false},
		{"rental complete", Context{Kind: KindRental, RentalProductID: 1, RentalStartDate: &now, RentalEndDate: &later}, false},
		{"rental missing dates", Context{Kind: KindRental, RentalProductID: 1}, true},
		{"rental reversed dates", Context{Kind: KindRental, RentalProductID: 1, RentalStartDate: &later, RentalEndDate: &now}, true},
		{"flash sale", Context{Kind: KindFlashSale, FlashSaleProductID: 3, FlashSaleQuantity: 2}, false},
		{"flash sale zero quantity", Context{Kind: KindFlashSale, FlashSaleProductID: 3}, true},
		{"preorder", Context{Kind: KindPreOrder, PreOrderProductID: 4, PreOrderQuantity: 1}, false},
		{"unknown kind", Context{Kind: "bogus"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ctx.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsConsumed(t *testing.T) {
	var ctx Context
	assert.False(t, ctx.IsConsumed())

	now := time.Now()
	ctx.ConsumedAt = &now
	assert.True(t, ctx.IsConsumed())
}
