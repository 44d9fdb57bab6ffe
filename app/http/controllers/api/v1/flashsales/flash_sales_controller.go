// Package flashsales exposes flash sale products and their checkout
package flashsales

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	v1 "github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/controllers/api/v1"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/repositories"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/requests"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/checkout"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/response"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/session"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/sslcommerz"
)

// FlashSalesController flash sale endpoints
type FlashSalesController struct {
	catalog *repositories.CatalogRepository
	service *checkout.Service
}

// NewFlashSalesController creates the controller
func NewFlashSalesController() *FlashSalesController {
	return &FlashSalesController{
		catalog: repositories.NewCatalogRepository(),
		service: checkout.NewService(sslcommerz.NewClient(), session.NewRedisStore()),
	}
}

// Index lists flash sale products with their discounted prices
func (ctrl *FlashSalesController) Index(c *gin.Context) {
	products, err := ctrl.catalog.FlashSaleProducts(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}

	listing := make([]gin.H, 0, len(products))
	for i := range products {
		listing = append(listing, gin.H{
			"product":    products[i],
			"sale_price": products[i].SalePrice(),
		})
	}
	response.Data(c, listing)
}

// Show returns one flash sale product
func (ctrl *FlashSalesController) Show(c *gin.Context) {
	prod, err := ctrl.catalog.GetFlashSaleProduct(c.Request.Context(), cast.ToUint64(c.Param("id")))
	if err != nil {
		response.Abort404(c, "Flash sale product not found")
		return
	}
	response.Data(c, gin.H{
		"product":    prod,
		"sale_price": prod.SalePrice(),
	})
}

// Checkout starts a payment at the discounted price
func (ctrl *FlashSalesController) Checkout(c *gin.Context) {
	request, err := requests.ValidateQuantityCheckout(c)
	if err != nil {
		response.BadRequest(c, err, "Invalid flash sale checkout request")
		return
	}

	initiation, err := ctrl.service.InitiateFlashSale(
		c.Request.Context(),
		v1.ActorFrom(c),
		cast.ToUint64(c.Param("id")),
		request.Quantity,
		checkout.Form{
			Address:       request.Address,
			Phone:         request.Phone,
			PaymentMethod: request.PaymentMethod,
		},
	)
	if err != nil {
		if checkout.IsClientError(err) {
			response.Abort400(c, err.Error())
			return
		}
		response.ServerError(c, err, "Could not start the payment, please try again")
		return
	}

	response.Data(c, gin.H{
		"payment_order_id": initiation.PaymentOrder.ID,
		"transaction_id":   initiation.Transaction.TransactionID,
		"amount":           initiation.PaymentOrder.Amount,
		"currency":         initiation.PaymentOrder.Currency,
		"redirect_url":     initiation.RedirectURL,
	})
}
