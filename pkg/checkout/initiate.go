package checkout

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/checkout"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/paymentorder"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/product"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/app"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/sslcommerz"

	"github.com/shopspring/decimal"
)

// InitiateCart starts a payment for everything in the customer's cart.
// Prices are resolved per line kind and snapshotted into the checkout
// context so later catalog edits cannot change what was paid for.
func (s *Service) InitiateCart(ctx context.Context, actor Actor, form Form) (*Initiation, error) {
	lines, err := s.carts.ItemsForUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make(checkout.Items, 0, len(lines))
	for i := range lines {
		item, err := s.resolveLine(ctx, &lines[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	total := items.Total()

	return s.begin(ctx, actor, form, total, map[string]string{
		SessionAddress:       form.Address,
		SessionPhone:         form.Phone,
		SessionPaymentMethod: form.PaymentMethod,
		SessionTotalPrice:    total.StringFixed(2),
	}, &checkout.Context{
		Kind:  checkout.KindCart,
		Items: items,
	})
}

// InitiateSingleProduct starts a payment for one regular product, bought
// directly without going through the cart.
func (s *Service) InitiateSingleProduct(ctx context.Context, actor Actor, productID, quantity uint64, form Form) (*Initiation, error) {
	if quantity == 0 {
		quantity = 1
	}
	prod, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, ErrProductUnavailable
	}
	if !prod.IsAvailable {
		return nil, ErrProductUnavailable
	}
	if !prod.InStock(quantity) {
		return nil, ErrInsufficientStock
	}

	items := checkout.Items{{
		ProductID: prod.ID,
		ItemKind:  string(product.TypeRegular),
		Name:      prod.Name,
		Quantity:  quantity,
		UnitPrice: prod.Price,
	}}
	total := items.Total()

	single, _ := json.Marshal(map[string]uint64{
		"product_id": productID,
		"quantity":   quantity,
	})

	return s.begin(ctx, actor, form, total, map[string]string{
		SessionAddress:       form.Address,
		SessionPhone:         form.Phone,
		SessionPaymentMethod: form.PaymentMethod,
		SessionTotalPrice:    total.StringFixed(2),
		SessionSingleProduct: string(single),
	}, &checkout.Context{
		Kind:  checkout.KindSingleProduct,
		Items: items,
	})
}

// InitiateRental starts a payment for renting a product over a period.
// The total is full days between the dates times the per-day rate.
func (s *Service) InitiateRental(ctx context.Context, actor Actor, rentalProductID uint64, start, end time.Time, form Form) (*Initiation, error) {
	if !end.After(start) {
		return nil, ErrInvalidRentalPeriod
	}
	prod, err := s.catalog.GetRentalProduct(ctx, rentalProductID)
	if err != nil {
		return nil, ErrProductUnavailable
	}
	if !prod.Available || prod.Stock == 0 {
		return nil, ErrProductUnavailable
	}
	total := prod.RentPrice(start, end)
	if total.IsZero() {
		return nil, ErrInvalidRentalPeriod
	}

	return s.begin(ctx, actor, form, total, map[string]string{
		SessionRentalProductID:  strconvUint(rentalProductID),
		SessionRentalStartDate:  start.Format(time.DateOnly),
		SessionRentalEndDate:    end.Format(time.DateOnly),
		SessionRentalTotalPrice: total.StringFixed(2),
	}, &checkout.Context{
		Kind:            checkout.KindRental,
		RentalProductID: prod.ID,
		RentalStartDate: &start,
		RentalEndDate:   &end,
		Items: checkout.Items{{
			ProductID: prod.ID,
			ItemKind:  "rental",
			Name:      prod.Title,
			Quantity:  1,
			UnitPrice: total,
		}},
	})
}

// InitiateFlashSale starts a payment for a flash sale purchase. The
// discounted unit price is computed and snapshotted now; a sale window
// closing before the callback does not change the charged price.
func (s *Service) InitiateFlashSale(ctx context.Context, actor Actor, flashSaleProductID, quantity uint64, form Form) (*Initiation, error) {
	if quantity == 0 {
		quantity = 1
	}
	prod, err := s.catalog.GetFlashSaleProduct(ctx, flashSaleProductID)
	if err != nil {
		return nil, ErrProductUnavailable
	}
	if !prod.IsRunning(time.Now()) {
		return nil, ErrSaleNotRunning
	}
	if prod.Stock < quantity {
		return nil, ErrInsufficientStock
	}
	unit := prod.SalePrice()
	total := unit.Mul(decimal.NewFromUint64(quantity))

	return s.begin(ctx, actor, form, total, map[string]string{
		SessionFlashSaleProductID:  strconvUint(flashSaleProductID),
		SessionFlashSaleAddress:    form.Address,
		SessionFlashSalePhone:      form.Phone,
		SessionFlashSaleTotalPrice: total.StringFixed(2),
	}, &checkout.Context{
		Kind:               checkout.KindFlashSale,
		FlashSaleProductID: prod.ID,
		FlashSaleQuantity:  quantity,
		Items: checkout.Items{{
			ProductID: prod.ID,
			ItemKind:  string(product.TypeFlashSale),
			Name:      prod.Name,
			Quantity:  quantity,
			UnitPrice: unit,
		}},
	})
}

// InitiatePreOrder starts a payment reserving units of an upcoming
// product.
func (s *Service) InitiatePreOrder(ctx context.Context, actor Actor, preOrderProductID, quantity uint64, form Form) (*Initiation, error) {
	if quantity == 0 {
		quantity = 1
	}
	prod, err := s.catalog.GetPreOrderProduct(ctx, preOrderProductID)
	if err != nil {
		return nil, ErrProductUnavailable
	}
	if !prod.IsAvailable(time.Now()) {
		return nil, ErrPreOrderClosed
	}
	if prod.SlotsRemaining() < quantity {
		return nil, ErrInsufficientStock
	}
	total := prod.Price.Mul(decimal.NewFromUint64(quantity))

	return s.begin(ctx, actor, form, total, map[string]string{
		SessionPreOrderProductID:  strconvUint(preOrderProductID),
		SessionPreOrderQuantity:   strconvUint(quantity),
		SessionPreOrderAddress:    form.Address,
		SessionPreOrderPhone:      form.Phone,
		SessionPreOrderTotalPrice: total.StringFixed(2),
	}, &checkout.Context{
		Kind:              checkout.KindPreOrder,
		PreOrderProductID: prod.ID,
		PreOrderQuantity:  quantity,
		Items: checkout.Items{{
			ProductID: prod.ID,
			ItemKind:  string(product.TypePreOrder),
			Name:      prod.Name,
			Quantity:  quantity,
			UnitPrice: prod.Price,
		}},
	})
}

// resolveLine turns one cart line into a priced snapshot item, checking
// the availability rules of the catalog the line points at.
func (s *Service) resolveLine(ctx context.Context, line *product.CartItem) (*checkout.Item, error) {
	item := &checkout.Item{
		ProductID: line.ProductID,
		ItemKind:  string(line.ProductType),
		Quantity:  line.Quantity,
	}

	switch line.ProductType {
	case product.TypeRegular:
		prod := line.Product
		if prod == nil {
			return nil, ErrProductUnavailable
		}
		if !prod.InStock(line.Quantity) {
			return nil, ErrInsufficientStock
		}
		item.Name = prod.Name
		item.UnitPrice = prod.Price

	case product.TypeFlashSale:
		prod, err := s.catalog.GetFlashSaleProduct(ctx, line.ProductID)
		if err != nil {
			return nil, ErrProductUnavailable
		}
		if !prod.IsRunning(time.Now()) {
			return nil, ErrSaleNotRunning
		}
		if prod.Stock < line.Quantity {
			return nil, ErrInsufficientStock
		}
		item.Name = prod.Name
		item.UnitPrice = prod.SalePrice()

	case product.TypePreOrder:
		prod, err := s.catalog.GetPreOrderProduct(ctx, line.ProductID)
		if err != nil {
			return nil, ErrProductUnavailable
		}
		if !prod.IsAvailable(time.Now()) {
			return nil, ErrPreOrderClosed
		}
		if prod.SlotsRemaining() < line.Quantity {
			return nil, ErrInsufficientStock
		}
		item.Name = prod.Name
		item.UnitPrice = prod.Price

	default:
		return nil, ErrProductUnavailable
	}

	return item, nil
}

// begin runs the shared tail of every initiation: persist the pending
// PaymentOrder, its checkout context and a transaction attempt, then ask
// the gateway for a redirect URL. Session fields are stashed only after
// the contact check, so a rejected request leaves no session residue. A
// gateway refusal or transport failure is recorded on the attempt and
// closes the order as failed.
func (s *Service) begin(ctx context.Context, actor Actor, form Form, amount decimal.Decimal, sessionFields map[string]string, checkoutCtx *checkout.Context) (*Initiation, error) {
	if form.Address == "" || form.Phone == "" || form.PaymentMethod == "" {
		return nil, ErrMissingContactFields
	}
	s.stash(actor.SessionID, sessionFields)

	order := &paymentorder.PaymentOrder{
		Amount:      amount,
		Currency:    config.GetString("gateway.currency", "BDT"),
		Status:      string(paymentorder.StatusPending),
		Description: describeItems(checkoutCtx.Items),
	}
	if actor.UserID != 0 {
		userID := actor.UserID
		order.UserID = &userID
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	checkoutCtx.PaymentOrderID = order.ID
	checkoutCtx.UserID = actor.UserID
	checkoutCtx.Address = form.Address
	checkoutCtx.Phone = form.Phone
	checkoutCtx.PaymentMethod = form.PaymentMethod
	if err := checkoutCtx.Validate(); err != nil {
		return nil, err
	}
	if err := s.contexts.Create(ctx, checkoutCtx); err != nil {
		return nil, err
	}

	tx := &paymentorder.Transaction{
		PaymentOrderID: order.ID,
		Gateway:        paymentorder.GatewaySSLCommerz,
		TransactionID:  newTranID(order.ID),
		Amount:         amount,
	}
	if err := s.orders.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	resp, err := s.gateway.InitiateSession(ctx, &sslcommerz.InitRequest{
		Amount:        amount,
		Currency:      order.Currency,
		TranID:        tx.TransactionID,
		ProductName:   order.Description,
		CustomerName:  actor.Name,
		CustomerEmail: actor.Email,
		Address:       form.Address,
		Phone:         form.Phone,
		SuccessURL:    app.URL("/v1/payments/sslcz/success"),
		FailURL:       app.URL("/v1/payments/sslcz/fail"),
		CancelURL:     app.URL("/v1/payments/sslcz/cancel"),
		IPNURL:        app.URL("/v1/payments/sslcz/ipn"),
	})
	if err != nil {
		if resp != nil {
			logger.LogIf(tx.SetRawResponse(resp.Raw))
		} else {
			logger.LogIf(tx.SetRawResponse(map[string]string{"error": err.Error()}))
		}
		logger.LogIf(s.orders.UpdateTransaction(ctx, tx))
		order.Status = string(paymentorder.StatusFailed)
		logger.LogIf(s.orders.Update(ctx, order))
		logger.ErrorString("Checkout", "InitiateSession", err.Error())
		return nil, err
	}

	logger.LogIf(tx.SetRawResponse(resp.Raw))
	logger.LogIf(s.orders.UpdateTransaction(ctx, tx))

	return &Initiation{
		PaymentOrder: order,
		Transaction:  tx,
		RedirectURL:  resp.RedirectURL(),
	}, nil
}

func strconvUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
