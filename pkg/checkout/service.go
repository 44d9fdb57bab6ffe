// Package checkout orchestrates the payment flow: it turns a checkout
// request into a pending PaymentOrder plus a durable checkout context,
// sends the customer to the gateway, and reconciles the gateway's
// callbacks against what was recorded at initiation.
package checkout

import (
	"context"
	"strconv"
	"strings"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/checkout"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/paymentorder"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/repositories"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/session"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/sslcommerz"

	"github.com/google/uuid"
)

// Session keys written at initiation and cleared exactly once after the
// domain commit runs.
const (
	SessionAddress       = "checkout_address"
	SessionPhone         = "checkout_phone"
	SessionPaymentMethod = "checkout_payment_method"
	SessionTotalPrice    = "checkout_total_price"

	SessionSingleProduct = "single_product_checkout"

	SessionRentalProductID  = "rental_product_id"
	SessionRentalStartDate  = "rental_start_date"
	SessionRentalEndDate    = "rental_end_date"
	SessionRentalTotalPrice = "rental_total_price"

	SessionFlashSaleProductID  = "flash_sale_product_id"
	SessionFlashSaleAddress    = "flash_sale_address"
	SessionFlashSalePhone      = "flash_sale_phone"
	SessionFlashSaleTotalPrice = "flash_sale_total_price"

	SessionPreOrderProductID  = "preorder_checkout_product_id"
	SessionPreOrderQuantity   = "preorder_checkout_quantity"
	SessionPreOrderAddress    = "preorder_checkout_address"
	SessionPreOrderPhone      = "preorder_checkout_phone"
	SessionPreOrderTotalPrice = "preorder_checkout_total_price"
)

var sessionKeysByKind = map[checkout.Kind][]string{
	checkout.KindCart: {
		SessionAddress, SessionPhone, SessionPaymentMethod, SessionTotalPrice,
	},
	checkout.KindSingleProduct: {
		SessionAddress, SessionPhone, SessionPaymentMethod, SessionTotalPrice,
		SessionSingleProduct,
	},
	checkout.KindRental: {
		SessionRentalProductID, SessionRentalStartDate,
		SessionRentalEndDate, SessionRentalTotalPrice,
	},
	checkout.KindFlashSale: {
		SessionFlashSaleProductID, SessionFlashSaleAddress,
		SessionFlashSalePhone, SessionFlashSaleTotalPrice,
	},
	checkout.KindPreOrder: {
		SessionPreOrderProductID, SessionPreOrderQuantity,
		SessionPreOrderAddress, SessionPreOrderPhone, SessionPreOrderTotalPrice,
	},
}

// Gateway the payment gateway contract, satisfied by the SSLCommerz
// client and by the fake used in tests.
type Gateway interface {
	InitiateSession(ctx context.Context, req *sslcommerz.InitRequest) (*sslcommerz.InitResponse, error)
	ValidateTransaction(ctx context.Context, valID string) (*sslcommerz.ValidationResponse, error)
}

// Actor the customer driving a checkout. UserID is zero for anonymous
// visitors; SessionID may be empty for cookieless API clients.
type Actor struct {
	UserID    uint64
	Name      string
	Email     string
	SessionID string
}

// Form contact fields submitted with the checkout request
type Form struct {
	Address       string
	Phone         string
	PaymentMethod string
}

// Initiation the outcome of a successful checkout initiation
type Initiation struct {
	PaymentOrder *paymentorder.PaymentOrder
	Transaction  *paymentorder.Transaction
	RedirectURL  string
}

// SuccessResult the outcome of a verified success callback.
// AlreadyProcessed is true when a duplicate delivery found the checkout
// context consumed and skipped the domain commit.
type SuccessResult struct {
	PaymentOrder     *paymentorder.PaymentOrder
	Transaction      *paymentorder.Transaction
	AlreadyProcessed bool
}

// Service the checkout orchestrator
type Service struct {
	orders   *repositories.PaymentOrderRepository
	contexts *repositories.CheckoutContextRepository
	carts    *repositories.CartRepository
	catalog  *repositories.CatalogRepository
	gateway  Gateway
	sessions session.Store
}

// NewService builds the orchestrator on the shared database connection
func NewService(gateway Gateway, sessions session.Store) *Service {
	return &Service{
		orders:   repositories.NewPaymentOrderRepository(),
		contexts: repositories.NewCheckoutContextRepository(),
		carts:    repositories.NewCartRepository(),
		catalog:  repositories.NewCatalogRepository(),
		gateway:  gateway,
		sessions: sessions,
	}
}

// newTranID builds the gateway transaction id, ORDER{id}-{8 hex chars}.
// The random suffix keeps retried attempts for one order distinct.
func newTranID(paymentOrderID uint64) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "ORDER" + strconv.FormatUint(paymentOrderID, 10) + "-" + suffix
}

// describeItems joins the snapshot into a short product_name string for
// the gateway, capped to fit the description column.
func describeItems(items checkout.Items) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Name)
	}
	description := strings.Join(parts, ", ")
	if len(description) > 250 {
		description = description[:250]
	}
	return description
}

func (s *Service) stash(sessionID string, fields map[string]string) {
	if sessionID == "" {
		return
	}
	for key, value := range fields {
		s.sessions.Set(sessionID, key, value)
	}
}

func (s *Service) clearSession(sessionID string, kind checkout.Kind) {
	if sessionID == "" {
		return
	}
	s.sessions.Forget(sessionID, sessionKeysByKind[kind]...)
}
