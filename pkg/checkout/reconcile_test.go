package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/checkout"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/flashsale"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/order"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/paymentorder"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/preorder"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/product"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/rental"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/database"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/sslcommerz"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reloadPaymentOrder(t *testing.T, id uint64) *paymentorder.PaymentOrder {
	t.Helper()
	var payOrder paymentorder.PaymentOrder
	require.NoError(t, database.DB.First(&payOrder, id).Error)
	return &payOrder
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.DB.Model(model).Count(&count).Error)
	return count
}

func TestHandleSuccessCommitsCartOrder(t *testing.T) {
	svc, gateway, store := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	keyboard := seedProduct(t, "Mechanical Keyboard", "50.00", 1)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 2)
	seedCartLine(t, 1, product.TypeRegular, keyboard.ID, 1)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)
	tranID := initiation.Transaction.TransactionID

	result, err := svc.HandleSuccess(context.Background(), "sess-1", tranID, "VAL123")
	require.NoError(t, err)
	assert.False(t, result.AlreadyProcessed)
	assert.Equal(t, "VAL123", gateway.lastValID)
	assert.True(t, result.PaymentOrder.IsPaid())
	assert.True(t, result.Transaction.Success)

	// domain order created with the snapshot lines
	var domainOrder order.Order
	require.NoError(t, database.DB.Preload("Items").First(&domainOrder).Error)
	assert.Equal(t, order.StatusConfirmed, domainOrder.Status)
	assert.True(t, domainOrder.TotalPrice.Equal(decimal.RequireFromString("150.00")))
	assert.Len(t, domainOrder.Items, 2)
	assert.Equal(t, testForm().Address, domainOrder.Address)

	// stock mutated, availability flipped where it hit zero
	var mouseAfter, keyboardAfter product.Product
	require.NoError(t, database.DB.First(&mouseAfter, mouse.ID).Error)
	require.NoError(t, database.DB.First(&keyboardAfter, keyboard.ID).Error)
	assert.Equal(t, uint64(3), mouseAfter.Stock)
	assert.True(t, mouseAfter.IsAvailable)
	assert.Equal(t, uint64(0), keyboardAfter.Stock)
	assert.False(t, keyboardAfter.IsAvailable)

	// cart cleared
	assert.Zero(t, countRows(t, &product.CartItem{}))

	// session state cleared once
	assert.Empty(t, store.Get("sess-1", SessionTotalPrice))
	assert.Empty(t, store.Get("sess-1", SessionAddress))
}

func TestHandleSuccessCommitsMixedCart(t *testing.T) {
	svc, _, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	sale := seedFlashSale(t, "100.00", "20", flashsale.DiscountFixed, 3)
	console := seedPreOrder(t, "500.00", 10)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 1)
	seedCartLine(t, 1, product.TypeFlashSale, sale.ID, 2)
	seedCartLine(t, 1, product.TypePreOrder, console.ID, 1)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)

	// 50 + 2x80 discounted + 500 reserved
	assert.True(t, initiation.PaymentOrder.Amount.Equal(decimal.RequireFromString("710.00")),
		"amount = %s", initiation.PaymentOrder.Amount)

	_, err = svc.HandleSuccess(context.Background(), "sess-1", initiation.Transaction.TransactionID, "VAL123")
	require.NoError(t, err)

	var domainOrder order.Order
	require.NoError(t, database.DB.Preload("Items").First(&domainOrder).Error)
	require.Len(t, domainOrder.Items, 3)
	assert.True(t, domainOrder.TotalPrice.Equal(decimal.RequireFromString("710.00")))

	// each line mutated its own catalog
	var mouseAfter product.Product
	require.NoError(t, database.DB.First(&mouseAfter, mouse.ID).Error)
	assert.Equal(t, uint64(4), mouseAfter.Stock)

	var saleAfter flashsale.FlashSaleProduct
	require.NoError(t, database.DB.First(&saleAfter, sale.ID).Error)
	assert.Equal(t, uint64(1), saleAfter.Stock)

	var consoleAfter preorder.PreOrderProduct
	require.NoError(t, database.DB.First(&consoleAfter, console.ID).Error)
	assert.Equal(t, uint64(1), consoleAfter.CurrentPreOrders)

	assert.Zero(t, countRows(t, &product.CartItem{}))
}

func TestHandleSuccessDuplicateDelivery(t *testing.T) {
	svc, _, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 2)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)
	tranID := initiation.Transaction.TransactionID

	first, err := svc.HandleSuccess(context.Background(), "sess-1", tranID, "VAL123")
	require.NoError(t, err)
	assert.False(t, first.AlreadyProcessed)

	second, err := svc.HandleSuccess(context.Background(), "sess-1", tranID, "VAL123")
	require.NoError(t, err)
	assert.True(t, second.AlreadyProcessed)
	assert.True(t, second.PaymentOrder.IsPaid())

	// exactly one domain order and one stock decrement
	assert.Equal(t, int64(1), countRows(t, &order.Order{}))
	var mouseAfter product.Product
	require.NoError(t, database.DB.First(&mouseAfter, mouse.ID).Error)
	assert.Equal(t, uint64(3), mouseAfter.Stock)
}

func TestHandleSuccessInvalidValidation(t *testing.T) {
	svc, gateway, _ := newTestService(t)
	gateway.validation = &sslcommerz.ValidationResponse{
		Status: "FAILED",
		Raw:    map[string]interface{}{"status": "FAILED"},
	}
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 2)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)

	_, err = svc.HandleSuccess(context.Background(), "sess-1", initiation.Transaction.TransactionID, "VAL123")
	require.ErrorIs(t, err, ErrPaymentNotValid)

	payOrder := reloadPaymentOrder(t, initiation.PaymentOrder.ID)
	assert.Equal(t, string(paymentorder.StatusFailed), payOrder.Status)

	// nothing committed
	assert.Zero(t, countRows(t, &order.Order{}))
	assert.Equal(t, int64(1), countRows(t, &product.CartItem{}))
	var mouseAfter product.Product
	require.NoError(t, database.DB.First(&mouseAfter, mouse.ID).Error)
	assert.Equal(t, uint64(5), mouseAfter.Stock)
}

func TestHandleSuccessValidatorUnreachable(t *testing.T) {
	svc, gateway, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 1)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)

	gateway.validateErr = errors.New("dial tcp: connection refused")
	_, err = svc.HandleSuccess(context.Background(), "sess-1", initiation.Transaction.TransactionID, "VAL123")
	require.ErrorIs(t, err, ErrVerification)

	// the callback can be retried: nothing moved
	payOrder := reloadPaymentOrder(t, initiation.PaymentOrder.ID)
	assert.True(t, payOrder.IsPending())
	assert.Zero(t, countRows(t, &order.Order{}))

	// retry with the validator back up succeeds
	gateway.validateErr = nil
	result, err := svc.HandleSuccess(context.Background(), "sess-1", initiation.Transaction.TransactionID, "VAL123")
	require.NoError(t, err)
	assert.True(t, result.PaymentOrder.IsPaid())
	assert.Equal(t, int64(1), countRows(t, &order.Order{}))
}

func TestHandleSuccessMissingIdentifiers(t *testing.T) {
	svc, _, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 1)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)

	_, err = svc.HandleSuccess(context.Background(), "sess-1", "", "VAL123")
	assert.ErrorIs(t, err, ErrMissingTranID)

	_, err = svc.HandleSuccess(context.Background(), "sess-1", "ORDER999-00000000", "VAL123")
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	// a success redirect without a val_id cannot be verified and must not
	// move anything: the real callback may still be on its way
	_, err = svc.HandleSuccess(context.Background(), "sess-1", initiation.Transaction.TransactionID, "")
	assert.ErrorIs(t, err, ErrMissingValID)
	payOrder := reloadPaymentOrder(t, initiation.PaymentOrder.ID)
	assert.True(t, payOrder.IsPending())
}

func TestHandleSuccessForgedDeliveryThenGenuine(t *testing.T) {
	svc, _, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 1)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)
	tranID := initiation.Transaction.TransactionID

	// anyone can hit the success endpoint with a bare tran_id; the order
	// must survive it untouched
	_, err = svc.HandleSuccess(context.Background(), "sess-1", tranID, "")
	require.ErrorIs(t, err, ErrMissingValID)
	payOrder := reloadPaymentOrder(t, initiation.PaymentOrder.ID)
	assert.True(t, payOrder.IsPending())
	assert.Zero(t, countRows(t, &order.Order{}))

	var tx paymentorder.Transaction
	require.NoError(t, database.DB.
		Where("transaction_id = ?", tranID).First(&tx).Error)
	assert.False(t, tx.Success)
	// the archived body is still the initiation response, nothing newer
	assert.Contains(t, string(tx.RawResponse), "SUCCESS")

	// the genuine callback then lands and pays the order
	result, err := svc.HandleSuccess(context.Background(), "sess-1", tranID, "VAL123")
	require.NoError(t, err)
	assert.True(t, result.PaymentOrder.IsPaid())
	assert.Equal(t, int64(1), countRows(t, &order.Order{}))
}

func TestHandleSuccessFulfillmentFailure(t *testing.T) {
	svc, _, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 1)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)

	// sabotage the context so the domain commit cannot dispatch
	require.NoError(t, database.DB.Model(&checkout.Context{}).
		Where("payment_order_id = ?", initiation.PaymentOrder.ID).
		Update("kind", "bogus").Error)

	result, err := svc.HandleSuccess(context.Background(), "sess-1", initiation.Transaction.TransactionID, "VAL123")
	require.ErrorIs(t, err, ErrFulfillment)

	// the money is kept: order paid, failure recorded for the operator
	require.NotNil(t, result)
	assert.True(t, result.PaymentOrder.IsPaid())
	payOrder := reloadPaymentOrder(t, initiation.PaymentOrder.ID)
	assert.True(t, payOrder.IsPaid())
	assert.NotEmpty(t, payOrder.FulfillmentError)
	assert.Zero(t, countRows(t, &order.Order{}))
}

func TestRetryFulfillment(t *testing.T) {
	svc, _, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 1)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)

	// break the context so the first commit fails after payment
	require.NoError(t, database.DB.Model(&checkout.Context{}).
		Where("payment_order_id = ?", initiation.PaymentOrder.ID).
		Update("kind", "bogus").Error)
	_, err = svc.HandleSuccess(context.Background(), "sess-1", initiation.Transaction.TransactionID, "VAL123")
	require.ErrorIs(t, err, ErrFulfillment)

	// operator repairs the record and replays the commit
	require.NoError(t, database.DB.Model(&checkout.Context{}).
		Where("payment_order_id = ?", initiation.PaymentOrder.ID).
		Update("kind", checkout.KindCart).Error)
	require.NoError(t, svc.RetryFulfillment(context.Background(), initiation.PaymentOrder.ID))

	payOrder := reloadPaymentOrder(t, initiation.PaymentOrder.ID)
	assert.True(t, payOrder.IsPaid())
	assert.Empty(t, payOrder.FulfillmentError)
	assert.Equal(t, int64(1), countRows(t, &order.Order{}))

	var mouseAfter product.Product
	require.NoError(t, database.DB.First(&mouseAfter, mouse.ID).Error)
	assert.Equal(t, uint64(4), mouseAfter.Stock)

	// nothing left to replay
	assert.ErrorIs(t, svc.RetryFulfillment(context.Background(), initiation.PaymentOrder.ID), ErrNoFulfillmentDue)
	assert.ErrorIs(t, svc.RetryFulfillment(context.Background(), 9999), ErrNoFulfillmentDue)
}

func TestHandleFail(t *testing.T) {
	svc, _, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 2)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)

	require.NoError(t, svc.HandleFail(context.Background(), initiation.Transaction.TransactionID))

	payOrder := reloadPaymentOrder(t, initiation.PaymentOrder.ID)
	assert.Equal(t, string(paymentorder.StatusFailed), payOrder.Status)

	// no domain side effects
	assert.Zero(t, countRows(t, &order.Order{}))
	var mouseAfter product.Product
	require.NoError(t, database.DB.First(&mouseAfter, mouse.ID).Error)
	assert.Equal(t, uint64(5), mouseAfter.Stock)
	assert.Equal(t, int64(1), countRows(t, &product.CartItem{}))
}

func TestHandleFailUnknownTranIDIsSilent(t *testing.T) {
	svc, _, _ := newTestService(t)

	assert.NoError(t, svc.HandleFail(context.Background(), ""))
	assert.NoError(t, svc.HandleFail(context.Background(), "ORDER999-00000000"))
}

func TestHandleFailDoesNotDowngradePaid(t *testing.T) {
	svc, _, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 1)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)
	tranID := initiation.Transaction.TransactionID

	_, err = svc.HandleSuccess(context.Background(), "sess-1", tranID, "VAL123")
	require.NoError(t, err)

	// a late fail callback for a paid order changes nothing
	require.NoError(t, svc.HandleFail(context.Background(), tranID))
	payOrder := reloadPaymentOrder(t, initiation.PaymentOrder.ID)
	assert.True(t, payOrder.IsPaid())

	var tx paymentorder.Transaction
	require.NoError(t, database.DB.
		Where("transaction_id = ?", tranID).First(&tx).Error)
	assert.True(t, tx.Success)
}

func TestHandleCancel(t *testing.T) {
	svc, _, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 2)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)

	require.NoError(t, svc.HandleCancel(context.Background(), initiation.Transaction.TransactionID))

	payOrder := reloadPaymentOrder(t, initiation.PaymentOrder.ID)
	assert.Equal(t, string(paymentorder.StatusCancelled), payOrder.Status)
	assert.Zero(t, countRows(t, &order.Order{}))
}

func TestHandleIPN(t *testing.T) {
	svc, _, _ := newTestService(t)
	mouse := seedProduct(t, "Wireless Mouse", "50.00", 5)
	seedCartLine(t, 1, product.TypeRegular, mouse.ID, 1)

	initiation, err := svc.InitiateCart(context.Background(), testActor(), testForm())
	require.NoError(t, err)
	tranID := initiation.Transaction.TransactionID

	require.NoError(t, svc.HandleIPN(context.Background(), tranID, map[string]string{
		"status": "VALID",
		"val_id": "VAL123",
		"amount": "50.00",
	}))

	// the notification is archived, the payment status does not move
	payOrder := reloadPaymentOrder(t, initiation.PaymentOrder.ID)
	assert.True(t, payOrder.IsPending())

	var tx paymentorder.Transaction
	require.NoError(t, database.DB.
		Where("transaction_id = ?", tranID).First(&tx).Error)
	assert.Contains(t, string(tx.RawResponse), "VAL123")

	assert.ErrorIs(t, svc.HandleIPN(context.Background(), "", nil), ErrMissingTranID)
	assert.ErrorIs(t, svc.HandleIPN(context.Background(), "ORDER999-00000000", nil), ErrTransactionNotFound)
}

func TestHandleSuccessCommitsRental(t *testing.T) {
	svc, _, _ := newTestService(t)
	camera := seedRental(t, "100.00", 1)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)
	initiation, err := svc.InitiateRental(context.Background(), testActor(), camera.ID, start, end, testForm())
	require.NoError(t, err)

	_, err = svc.HandleSuccess(context.Background(), "sess-1", initiation.Transaction.TransactionID, "VAL123")
	require.NoError(t, err)

	var booking rental.RentalOrder
	require.NoError(t, database.DB.First(&booking).Error)
	assert.Equal(t, rental.StatusConfirmed, booking.Status)
	assert.True(t, booking.TotalRentPrice.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, uint64(1), booking.UserID)

	// the single unit is taken
	var cameraAfter rental.RentalProduct
	require.NoError(t, database.DB.First(&cameraAfter, camera.ID).Error)
	assert.Equal(t, uint64(0), cameraAfter.Stock)
	assert.False(t, cameraAfter.Available)
}

func TestHandleSuccessCommitsFlashSale(t *testing.T) {
	svc, _, _ := newTestService(t)
	sale := seedFlashSale(t, "1999.99", "10", flashsale.DiscountPercent, 2)

	initiation, err := svc.InitiateFlashSale(context.Background(), testActor(), sale.ID, 2, testForm())
	require.NoError(t, err)

	_, err = svc.HandleSuccess(context.Background(), "sess-1", initiation.Transaction.TransactionID, "VAL123")
	require.NoError(t, err)

	var saleOrder flashsale.FlashSaleOrder
	require.NoError(t, database.DB.First(&saleOrder).Error)
	assert.Equal(t, flashsale.StatusConfirmed, saleOrder.Status)
	assert.True(t, saleOrder.Price.Equal(decimal.RequireFromString("1799")))
	assert.True(t, saleOrder.TotalPrice.Equal(decimal.RequireFromString("3598")))
	assert.Equal(t, uint64(2), saleOrder.Quantity)

	var saleAfter flashsale.FlashSaleProduct
	require.NoError(t, database.DB.First(&saleAfter, sale.ID).Error)
	assert.Equal(t, uint64(0), saleAfter.Stock)
	assert.False(t, saleAfter.Available)
}

func TestHandleSuccessCommitsPreOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	console := seedPreOrder(t, "500.00", 10)

	initiation, err := svc.InitiatePreOrder(context.Background(), testActor(), console.ID, 2, testForm())
	require.NoError(t, err)

	_, err = svc.HandleSuccess(context.Background(), "sess-1", initiation.Transaction.TransactionID, "VAL123")
	require.NoError(t, err)

	var reservation preorder.PreOrder
	require.NoError(t, database.DB.Preload("Items").First(&reservation).Error)
	assert.Equal(t, preorder.StatusConfirmed, reservation.Status)
	assert.True(t, reservation.TotalPrice.Equal(decimal.RequireFromString("1000.00")))
	require.Len(t, reservation.Items, 1)
	assert.Equal(t, uint64(2), reservation.Items[0].Quantity)

	var consoleAfter preorder.PreOrderProduct
	require.NoError(t, database.DB.First(&consoleAfter, console.ID).Error)
	assert.Equal(t, uint64(2), consoleAfter.CurrentPreOrders)
}
