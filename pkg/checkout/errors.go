package checkout

import "errors"

// Initiation failures, reported to the customer before any gateway call
var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingContactFields = errors.New("address, phone and payment method are required")
	ErrProductUnavailable   = errors.New("product is not available")
	ErrInsufficientStock    = errors.New("insufficient stock available")
	ErrInvalidRentalPeriod  = errors.New("rental end date must be after the start date")
	ErrSaleNotRunning       = errors.New("flash sale is not currently running")
	ErrPreOrderClosed       = errors.New("pre-order window is closed")
)

// Callback failures. A missing identifier or an unreachable validator
// changes no record; only a validator verdict moves the payment order.
var (
	ErrMissingTranID       = errors.New("transaction id is missing")
	ErrMissingValID        = errors.New("validation id is missing")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPaymentNotValid     = errors.New("gateway did not validate the payment")
	ErrVerification        = errors.New("payment verification unavailable")
	ErrFulfillment         = errors.New("order fulfillment failed after payment")
	ErrNoFulfillmentDue    = errors.New("payment order has no fulfillment failure to retry")
)

// IsClientError reports whether the error is the customer's to fix, as
// opposed to a gateway or storage failure.
func IsClientError(err error) bool {
	for _, clientErr := range []error{
		ErrEmptyCart, ErrMissingContactFields, ErrProductUnavailable,
		ErrInsufficientStock, ErrInvalidRentalPeriod, ErrSaleNotRunning,
		ErrPreOrderClosed, ErrMissingTranID, ErrMissingValID,
		ErrTransactionNotFound, ErrPaymentNotValid, ErrNoFulfillmentDue,
	} {
		if errors.Is(err, clientErr) {
			return true
		}
	}
	return false
}
