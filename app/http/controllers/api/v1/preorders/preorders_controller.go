// Package preorders exposes pre-order products and their checkout
package preorders

import (
	"time"

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

// PreOrdersController pre-order endpoints
type PreOrdersController struct {
	catalog *repositories.CatalogRepository
	service *checkout.Service
}

// NewPreOrdersController creates the controller
func NewPreOrdersController() *PreOrdersController {
	return &PreOrdersController{
		catalog: repositories.NewCatalogRepository(),
		service: checkout.NewService(sslcommerz.NewClient(), session.NewRedisStore()),
	}
}

// Index lists active pre-order products with their remaining slots
func (ctrl *PreOrdersController) Index(c *gin.Context) {
	products, err := ctrl.catalog.PreOrderProducts(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}

	now := time.Now()
	listing := make([]gin.H, 0, len(products))
	for i := range products {
		listing = append(listing, gin.H{
			"product":         products[i],
			"slots_remaining": products[i].SlotsRemaining(),
			"open":            products[i].IsAvailable(now),
		})
	}
	response.Data(c, listing)
}

// Show returns one pre-order product
func (ctrl *PreOrdersController) Show(c *gin.Context) {
	prod, err := ctrl.catalog.GetPreOrderProduct(c.Request.Context(), cast.ToUint64(c.Param("id")))
	if err != nil {
		response.Abort404(c, "Pre-order product not found")
		return
	}
	response.Data(c, gin.H{
		"product":         prod,
		"slots_remaining": prod.SlotsRemaining(),
		"open":            prod.IsAvailable(time.Now()),
	})
}

// Checkout starts a payment reserving units of the product
func (ctrl *PreOrdersController) Checkout(c *gin.Context) {
	request, err := requests.ValidateQuantityCheckout(c)
	if err != nil {
		response.BadRequest(c, err, "Invalid pre-order checkout request")
		return
	}

	initiation, err := ctrl.service.InitiatePreOrder(
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
