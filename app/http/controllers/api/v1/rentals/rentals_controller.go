// Package rentals exposes the rental catalog and rental checkout
package rentals

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

// RentalsController rental product endpoints
type RentalsController struct {
	catalog *repositories.CatalogRepository
	service *checkout.Service
}

// NewRentalsController creates the controller
func NewRentalsController() *RentalsController {
	return &RentalsController{
		catalog: repositories.NewCatalogRepository(),
		service: checkout.NewService(sslcommerz.NewClient(), session.NewRedisStore()),
	}
}

// Index lists available rental products
func (ctrl *RentalsController) Index(c *gin.Context) {
	products, err := ctrl.catalog.RentalProducts(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Data(c, products)
}

// Show returns one rental product
func (ctrl *RentalsController) Show(c *gin.Context) {
	prod, err := ctrl.catalog.GetRentalProduct(c.Request.Context(), cast.ToUint64(c.Param("id")))
	if err != nil {
		response.Abort404(c, "Rental product not found")
		return
	}
	response.Data(c, prod)
}

// Checkout starts a payment for renting the product over a period
func (ctrl *RentalsController) Checkout(c *gin.Context) {
	request, err := requests.ValidateRentalCheckout(c)
	if err != nil {
		response.BadRequest(c, err, "Invalid rental checkout request")
		return
	}
	start, end, err := request.Period()
	if err != nil {
		response.BadRequest(c, err, "Invalid rental dates")
		return
	}

	initiation, err := ctrl.service.InitiateRental(
		c.Request.Context(),
		v1.ActorFrom(c),
		cast.ToUint64(c.Param("id")),
		start, end,
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
