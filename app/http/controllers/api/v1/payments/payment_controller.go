package payments

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/http/middlewares"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/repositories"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/checkout"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/response"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/session"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/sslcommerz"
)

// PaymentController gateway callback handling and the payment listing
type PaymentController struct {
	service *checkout.Service
	orders  *repositories.PaymentOrderRepository
}

// NewPaymentController creates the controller
func NewPaymentController() *PaymentController {
	return &PaymentController{
		service: checkout.NewService(sslcommerz.NewClient(), session.NewRedisStore()),
		orders:  repositories.NewPaymentOrderRepository(),
	}
}

// callbackParam reads a gateway callback parameter; SSLCommerz posts
// form data but sandbox redirects sometimes arrive as query strings.
func callbackParam(c *gin.Context, name string) string {
	if value := c.PostForm(name); value != "" {
		return value
	}
	return c.Query(name)
}

// Success handles the gateway's success callback. The payment only
// counts once the validator API independently confirms it.
func (ctrl *PaymentController) Success(c *gin.Context) {
	tranID := callbackParam(c, "tran_id")
	valID := callbackParam(c, "val_id")

	result, err := ctrl.service.HandleSuccess(c.Request.Context(), middlewares.SessionID(c), tranID, valID)
	switch {
	case err == nil:
		response.Data(c, gin.H{
			"payment_order_id":  result.PaymentOrder.ID,
			"status":            result.PaymentOrder.Status,
			"transaction_id":    result.Transaction.TransactionID,
			"already_processed": result.AlreadyProcessed,
		})
	case errors.Is(err, checkout.ErrFulfillment):
		// Money confirmed, goods pending. Never bounce the customer.
		response.JSON(c, gin.H{
			"status":           response.Success,
			"payment_order_id": result.PaymentOrder.ID,
			"message":          "Payment received; your order is being processed",
		})
	case checkout.IsClientError(err):
		response.Abort400(c, err.Error())
	default:
		response.ServerError(c, err, "Payment verification is temporarily unavailable")
	}
}

// Fail handles the gateway's fail callback
func (ctrl *PaymentController) Fail(c *gin.Context) {
	if err := ctrl.service.HandleFail(c.Request.Context(), callbackParam(c, "tran_id")); err != nil {
		response.ServerError(c, err)
		return
	}
	response.Data(c, gin.H{"status": "failed"})
}

// Cancel handles the gateway's cancel callback
func (ctrl *PaymentController) Cancel(c *gin.Context) {
	if err := ctrl.service.HandleCancel(c.Request.Context(), callbackParam(c, "tran_id")); err != nil {
		response.ServerError(c, err)
		return
	}
	response.Data(c, gin.H{"status": "cancelled"})
}

// IPN handles the gateway's server-to-server notification. The payload
// is archived on the transaction; status only moves through Success.
func (ctrl *PaymentController) IPN(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.Abort400(c, "Malformed notification payload")
		return
	}
	payload := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}

	err := ctrl.service.HandleIPN(c.Request.Context(), callbackParam(c, "tran_id"), payload)
	switch {
	case err == nil:
		response.Data(c, gin.H{"received": true})
	case checkout.IsClientError(err):
		response.Abort400(c, err.Error())
	default:
		response.ServerError(c, err)
	}
}

// RetryFulfillment re-runs the domain commit for a paid order stuck in
// fulfillment_error
func (ctrl *PaymentController) RetryFulfillment(c *gin.Context) {
	id := cast.ToUint64(c.Param("id"))
	if id == 0 {
		response.Abort400(c, "Invalid payment order id")
		return
	}

	err := ctrl.service.RetryFulfillment(c.Request.Context(), id)
	switch {
	case err == nil:
		response.Data(c, gin.H{"payment_order_id": id, "fulfilled": true})
	case checkout.IsClientError(err):
		response.Abort400(c, err.Error())
	default:
		response.ServerError(c, err, "Fulfillment retry failed")
	}
}

// Index lists recent payment orders, newest first
func (ctrl *PaymentController) Index(c *gin.Context) {
	orders, err := ctrl.orders.ListRecent(c.Request.Context(), 50)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Data(c, orders)
}
