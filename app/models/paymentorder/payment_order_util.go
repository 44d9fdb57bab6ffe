package paymentorder

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Status payment order status
type Status string

// Statuses are terminal except pending: pending → {paid, failed,
// cancelled}, no transition leaves a terminal state.
const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// GatewaySSLCommerz the only gateway currently wired
const GatewaySSLCommerz = "sslcommerz"

// IsPending reports whether the order is still awaiting payment
func (o *PaymentOrder) IsPending() bool {
	return o.Status == string(StatusPending)
}

// IsPaid reports whether the order has been paid
func (o *PaymentOrder) IsPaid() bool {
	return o.Status == string(StatusPaid)
}

// IsTerminal reports whether the status can no longer change
func (o *PaymentOrder) IsTerminal() bool {
	switch Status(o.Status) {
	case StatusPaid, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// SetRawResponse stores an arbitrary payload on the transaction's
// raw_response column for later diagnosis.
func (t *Transaction) SetRawResponse(payload interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	t.RawResponse = datatypes.JSON(b)
	return nil
}
