package migrations

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/checkout"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/flashsale"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/order"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/paymentorder"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/preorder"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/product"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/rental"
)

// RegisterTables returns the model list for auto migration
func RegisterTables() []interface{} {
	return []interface{}{
		&product.Category{},
		&product.Product{},
		&product.CartItem{},
		&order.Order{},
		&order.OrderItem{},
		&rental.RentalProduct{},
		&rental.RentalOrder{},
		&flashsale.FlashSaleProduct{},
		&flashsale.FlashSaleOrder{},
		&preorder.PreOrderProduct{},
		&preorder.PreOrder{},
		&preorder.PreOrderItem{},
		&paymentorder.PaymentOrder{},
		&paymentorder.Transaction{},
		&checkout.Context{},
	}
}
