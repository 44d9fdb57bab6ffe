package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/checkout"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/flashsale"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/order"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/paymentorder"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/preorder"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/product"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/app/models/rental"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/database"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"

	"gorm.io/gorm"
)

// HandleSuccess reconciles the gateway's success callback. The redirect
// parameters are never trusted: payment is confirmed only by an
// independent call to the validator API. On a confirmed payment the
// checkout context is claimed exactly once and the domain commit runs;
// a duplicate delivery finds the context consumed and changes nothing.
func (s *Service) HandleSuccess(ctx context.Context, sessionID, tranID, valID string) (*SuccessResult, error) {
	if tranID == "" {
		return nil, ErrMissingTranID
	}
	tx, err := s.orders.LatestTransactionByTranID(ctx, tranID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	payOrder, err := s.orders.Get(ctx, tx.PaymentOrderID)
	if err != nil {
		return nil, err
	}

	if valID == "" {
		// Without a val_id the payment cannot be verified. The endpoint is
		// open to anyone, so nothing is recorded: the genuine callback may
		// still arrive and must find the order untouched.
		return nil, ErrMissingValID
	}

	validation, err := s.gateway.ValidateTransaction(ctx, valID)
	if err != nil {
		// Transport failure: nothing is known either way, so every record
		// keeps its prior state and the callback can be retried.
		logger.ErrorString("Checkout", "ValidateTransaction", err.Error())
		return nil, fmt.Errorf("%w: %v", ErrVerification, err)
	}

	logger.LogIf(tx.SetRawResponse(validation.Raw))
	if !validation.IsValid() {
		s.closeAttempt(ctx, tx, payOrder, paymentorder.StatusFailed)
		return nil, ErrPaymentNotValid
	}

	tx.Success = true
	logger.LogIf(s.orders.UpdateTransaction(ctx, tx))
	if !payOrder.IsTerminal() {
		payOrder.Status = string(paymentorder.StatusPaid)
		if err := s.orders.Update(ctx, payOrder); err != nil {
			return nil, err
		}
	}

	claimed, err := s.contexts.Claim(ctx, payOrder.ID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return &SuccessResult{PaymentOrder: payOrder, Transaction: tx, AlreadyProcessed: true}, nil
	}

	checkoutCtx, err := s.contexts.GetByPaymentOrderID(ctx, payOrder.ID)
	if err == nil {
		err = s.commit(ctx, checkoutCtx)
	}
	if err != nil {
		// The money is confirmed but the goods are not committed. The
		// payment order stays paid; the failure is recorded for manual
		// resolution instead of refusing the customer's money.
		payOrder.FulfillmentError = err.Error()
		logger.LogIf(s.orders.Update(ctx, payOrder))
		logger.ErrorString("Checkout", "Fulfillment", err.Error())
		return &SuccessResult{PaymentOrder: payOrder, Transaction: tx},
			fmt.Errorf("%w: %v", ErrFulfillment, err)
	}

	s.clearSession(sessionID, checkoutCtx.Kind)
	return &SuccessResult{PaymentOrder: payOrder, Transaction: tx}, nil
}

// RetryFulfillment re-runs the domain commit for a paid order whose
// fulfillment failed. The consumed mark is released and re-claimed so
// two operators retrying at once cannot double-commit.
func (s *Service) RetryFulfillment(ctx context.Context, paymentOrderID uint64) error {
	payOrder, err := s.orders.Get(ctx, paymentOrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoFulfillmentDue
	}
	if err != nil {
		return err
	}
	if !payOrder.IsPaid() || payOrder.FulfillmentError == "" {
		return ErrNoFulfillmentDue
	}

	if err := s.contexts.Release(ctx, payOrder.ID); err != nil {
		return err
	}
	claimed, err := s.contexts.Claim(ctx, payOrder.ID)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	checkoutCtx, err := s.contexts.GetByPaymentOrderID(ctx, payOrder.ID)
	if err == nil {
		err = s.commit(ctx, checkoutCtx)
	}
	if err != nil {
		payOrder.FulfillmentError = err.Error()
		logger.LogIf(s.orders.Update(ctx, payOrder))
		return fmt.Errorf("%w: %v", ErrFulfillment, err)
	}

	payOrder.FulfillmentError = ""
	return s.orders.Update(ctx, payOrder)
}

// HandleFail records the gateway's fail callback. Unknown or missing
// transaction ids are ignored; the gateway retries callbacks and a stale
// id must not produce an error page.
func (s *Service) HandleFail(ctx context.Context, tranID string) error {
	return s.closeOut(ctx, tranID, paymentorder.StatusFailed, "FAILED")
}

// HandleCancel records the gateway's cancel callback
func (s *Service) HandleCancel(ctx context.Context, tranID string) error {
	return s.closeOut(ctx, tranID, paymentorder.StatusCancelled, "CANCELLED")
}

// HandleIPN stores the server-to-server notification payload on the
// matching transaction. It never moves the payment order's status; only
// the verified success path does that.
func (s *Service) HandleIPN(ctx context.Context, tranID string, payload map[string]string) error {
	if tranID == "" {
		return ErrMissingTranID
	}
	tx, err := s.orders.LatestTransactionByTranID(ctx, tranID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTransactionNotFound
	}
	if err != nil {
		return err
	}
	logger.LogIf(tx.SetRawResponse(payload))
	return s.orders.UpdateTransaction(ctx, tx)
}

func (s *Service) closeOut(ctx context.Context, tranID string, status paymentorder.Status, label string) error {
	if tranID == "" {
		return nil
	}
	tx, err := s.orders.LatestTransactionByTranID(ctx, tranID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if tx.Success {
		// a verified attempt is never downgraded by a late callback
		return nil
	}
	payOrder, err := s.orders.Get(ctx, tx.PaymentOrderID)
	if err != nil {
		return err
	}
	logger.LogIf(tx.SetRawResponse(map[string]string{"status": label}))
	s.closeAttempt(ctx, tx, payOrder, status)
	return nil
}

// closeAttempt marks the attempt unsuccessful and, unless the order
// already reached a terminal status, closes the order too.
func (s *Service) closeAttempt(ctx context.Context, tx *paymentorder.Transaction, payOrder *paymentorder.PaymentOrder, status paymentorder.Status) {
	tx.Success = false
	logger.LogIf(s.orders.UpdateTransaction(ctx, tx))
	if !payOrder.IsTerminal() {
		payOrder.Status = string(status)
		logger.LogIf(s.orders.Update(ctx, payOrder))
	}
}

// commit runs the domain side of a confirmed payment in one database
// transaction: create the domain order, mutate stock, clear the cart.
func (s *Service) commit(ctx context.Context, checkoutCtx *checkout.Context) error {
	return database.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		switch checkoutCtx.Kind {
		case checkout.KindCart:
			return s.commitOrder(db, checkoutCtx, true)
		case checkout.KindSingleProduct:
			return s.commitOrder(db, checkoutCtx, false)
		case checkout.KindRental:
			return s.commitRental(db, checkoutCtx)
		case checkout.KindFlashSale:
			return s.commitFlashSale(db, checkoutCtx)
		case checkout.KindPreOrder:
			return s.commitPreOrder(db, checkoutCtx)
		default:
			return fmt.Errorf("unknown checkout kind %q", checkoutCtx.Kind)
		}
	})
}

func (s *Service) commitOrder(db *gorm.DB, checkoutCtx *checkout.Context, clearCart bool) error {
	domainOrder := &order.Order{
		UserID:        checkoutCtx.UserID,
		Status:        order.StatusConfirmed,
		TotalPrice:    checkoutCtx.Items.Total(),
		Address:       checkoutCtx.Address,
		Phone:         checkoutCtx.Phone,
		PaymentMethod: checkoutCtx.PaymentMethod,
	}
	for _, item := range checkoutCtx.Items {
		domainOrder.Items = append(domainOrder.Items, order.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
		})
	}
	if err := db.Create(domainOrder).Error; err != nil {
		return err
	}

	for _, item := range checkoutCtx.Items {
		if err := applyStock(db, item); err != nil {
			return err
		}
	}

	if clearCart {
		err := db.Where("user_id = ?", checkoutCtx.UserID).
			Delete(&product.CartItem{}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) commitRental(db *gorm.DB, checkoutCtx *checkout.Context) error {
	var prod rental.RentalProduct
	if err := db.First(&prod, checkoutCtx.RentalProductID).Error; err != nil {
		return err
	}
	rentalOrder := &rental.RentalOrder{
		UserID:          checkoutCtx.UserID,
		ProductID:       prod.ID,
		RentalStartDate: *checkoutCtx.RentalStartDate,
		RentalEndDate:   *checkoutCtx.RentalEndDate,
		TotalRentPrice:  checkoutCtx.Items.Total(),
		Status:          rental.StatusConfirmed,
	}
	if err := db.Create(rentalOrder).Error; err != nil {
		return err
	}
	if prod.Stock <= 1 {
		prod.Stock = 0
		prod.Available = false
	} else {
		prod.Stock--
	}
	return db.Save(&prod).Error
}

func (s *Service) commitFlashSale(db *gorm.DB, checkoutCtx *checkout.Context) error {
	var prod flashsale.FlashSaleProduct
	if err := db.First(&prod, checkoutCtx.FlashSaleProductID).Error; err != nil {
		return err
	}
	unit := prod.SalePrice()
	if len(checkoutCtx.Items) > 0 {
		unit = checkoutCtx.Items[0].UnitPrice
	}
	quantity := checkoutCtx.FlashSaleQuantity
	saleOrder := &flashsale.FlashSaleOrder{
		UserID:     checkoutCtx.UserID,
		ProductID:  prod.ID,
		Quantity:   quantity,
		Price:      unit,
		TotalPrice: checkoutCtx.Items.Total(),
		Address:    checkoutCtx.Address,
		Phone:      checkoutCtx.Phone,
		Status:     flashsale.StatusConfirmed,
	}
	if err := db.Create(saleOrder).Error; err != nil {
		return err
	}
	if prod.Stock <= quantity {
		prod.Stock = 0
		prod.Available = false
	} else {
		prod.Stock -= quantity
	}
	return db.Save(&prod).Error
}

func (s *Service) commitPreOrder(db *gorm.DB, checkoutCtx *checkout.Context) error {
	var prod preorder.PreOrderProduct
	if err := db.First(&prod, checkoutCtx.PreOrderProductID).Error; err != nil {
		return err
	}
	unit := prod.Price
	if len(checkoutCtx.Items) > 0 {
		unit = checkoutCtx.Items[0].UnitPrice
	}
	quantity := checkoutCtx.PreOrderQuantity
	reservation := &preorder.PreOrder{
		UserID:        checkoutCtx.UserID,
		Status:        preorder.StatusConfirmed,
		TotalPrice:    checkoutCtx.Items.Total(),
		Address:       checkoutCtx.Address,
		Phone:         checkoutCtx.Phone,
		PaymentMethod: checkoutCtx.PaymentMethod,
		Items: []preorder.PreOrderItem{{
			PreOrderProductID: prod.ID,
			Quantity:          quantity,
			Price:             unit,
		}},
	}
	if err := db.Create(reservation).Error; err != nil {
		return err
	}
	prod.CurrentPreOrders += quantity
	return db.Save(&prod).Error
}

// applyStock mutates the catalog the snapshot item points at
func applyStock(db *gorm.DB, item checkout.Item) error {
	switch product.ProductType(item.ItemKind) {
	case product.TypeRegular:
		var prod product.Product
		if err := db.First(&prod, item.ProductID).Error; err != nil {
			return err
		}
		if prod.Stock <= item.Quantity {
			prod.Stock = 0
			prod.IsAvailable = false
		} else {
			prod.Stock -= item.Quantity
		}
		return db.Save(&prod).Error

	case product.TypeFlashSale:
		var prod flashsale.FlashSaleProduct
		if err := db.First(&prod, item.ProductID).Error; err != nil {
			return err
		}
		if prod.Stock <= item.Quantity {
			prod.Stock = 0
			prod.Available = false
		} else {
			prod.Stock -= item.Quantity
		}
		return db.Save(&prod).Error

	case product.TypePreOrder:
		var prod preorder.PreOrderProduct
		if err := db.First(&prod, item.ProductID).Error; err != nil {
			return err
		}
		prod.CurrentPreOrders += item.Quantity
		return db.Save(&prod).Error
	}
	return fmt.Errorf("unknown item kind %q", item.ItemKind)
}
