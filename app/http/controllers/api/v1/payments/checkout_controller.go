// Package payments exposes checkout initiation and the gateway callback
// endpoints
package payments

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	v1 "github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/controllers/api/v1"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/requests"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/checkout"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/response"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/session"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/sslcommerz"
)

// CheckoutController cart and direct product checkout
type CheckoutController struct {
	service *checkout.Service
}

// NewCheckoutController creates the controller with the live gateway
// client and the Redis session store
func NewCheckoutController() *CheckoutController {
	return &CheckoutController{
		service: checkout.NewService(sslcommerz.NewClient(), session.NewRedisStore()),
	}
}

// Store starts a payment for the whole cart
func (ctrl *CheckoutController) Store(c *gin.Context) {
	request, err := requests.ValidateCheckout(c)
	if err != nil {
		response.BadRequest(c, err, "Invalid checkout request")
		return
	}

	initiation, err := ctrl.service.InitiateCart(c.Request.Context(), v1.ActorFrom(c), checkout.Form{
		Address:       request.Address,
		Phone:         request.Phone,
		PaymentMethod: request.PaymentMethod,
	})
	if err != nil {
		respondInitiateError(c, err)
		return
	}
	respondInitiation(c, initiation)
}

// StoreProduct starts a payment for one product bought directly
func (ctrl *CheckoutController) StoreProduct(c *gin.Context) {
	request, err := requests.ValidateQuantityCheckout(c)
	if err != nil {
		response.BadRequest(c, err, "Invalid checkout request")
		return
	}

	initiation, err := ctrl.service.InitiateSingleProduct(
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
		respondInitiateError(c, err)
		return
	}
	respondInitiation(c, initiation)
}

// respondInitiation answers a successful initiation with the gateway
// redirect URL
func respondInitiation(c *gin.Context, initiation *checkout.Initiation) {
	response.Data(c, gin.H{
		"payment_order_id": initiation.PaymentOrder.ID,
		"transaction_id":   initiation.Transaction.TransactionID,
		"amount":           initiation.PaymentOrder.Amount,
		"currency":         initiation.PaymentOrder.Currency,
		"redirect_url":     initiation.RedirectURL,
	})
}

func respondInitiateError(c *gin.Context, err error) {
	if checkout.IsClientError(err) {
		response.Abort400(c, err.Error())
		return
	}
	response.ServerError(c, err, "Could not start the payment, please try again")
}
