package sslcommerz

import "github.com/shopspring/decimal"

// InitRequest parameters for a payment session initiation
type InitRequest struct {
	Amount       decimal.Decimal
	Currency     string
	TranID       string
	ProductName  string
	CustomerName string
	// CustomerEmail may be empty or malformed; the client substitutes a
	// syntactically valid fallback because the gateway rejects bad emails.
	CustomerEmail string
	Address       string
	Phone         string

	SuccessURL string
	FailURL    string
	CancelURL  string
	IPNURL     string
}

// InitResponse gateway response to a session initiation
type InitResponse struct {
	Status             string `json:"status"`
	FailedReason       string `json:"failedreason"`
	SessionKey         string `json:"sessionkey"`
	GatewayPageURL     string `json:"GatewayPageURL"`
	RedirectGatewayURL string `json:"redirectGatewayURL"`

	// Raw keeps the undecoded body for the transaction record
	Raw map[string]interface{} `json:"-"`
}

// RedirectURL the URL the customer must be redirected to, "" when the
// gateway did not provide one.
func (r *InitResponse) RedirectURL() string {
	if r.GatewayPageURL != "" {
		return r.GatewayPageURL
	}
	return r.RedirectGatewayURL
}

// Validation statuses reported by the validator API
const (
	StatusValid     = "VALID"
	StatusValidated = "VALIDATED"
)

// ValidationResponse gateway response to a server-side validation call
type ValidationResponse struct {
	Status   string `json:"status"`
	TranDate string `json:"tran_date"`
	TranID   string `json:"tran_id"`
	ValID    string `json:"val_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	BankTxn  string `json:"bank_tran_id"`
	CardType string `json:"card_type"`

	Raw map[string]interface{} `json:"-"`
}

// IsValid reports whether the gateway vouches for the payment. Anything
// other than an explicit VALID or VALIDATED is treated as not paid.
func (v *ValidationResponse) IsValid() bool {
	return v.Status == StatusValid || v.Status == StatusValidated
}
