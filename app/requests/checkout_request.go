package requests

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// contactRules shared by every checkout form
var contactRules = govalidator.MapData{
	"address":        []string{"required", "min_len:5"},
	"phone":          []string{"required", "min_len:7", "max_len:15"},
	"payment_method": []string{"required", "in:SSLCommerz"},
}

var contactMessages = govalidator.MapData{
	"address": []string{
		"required:Shipping address is required",
		"min_len:Shipping address must be at least 5 characters",
	},
	"phone": []string{
		"required:Phone number is required",
		"min_len:Phone number must be at least 7 characters",
		"max_len:Phone number must be at most 15 characters",
	},
	"payment_method": []string{
		"required:Payment method is required",
		"in:Only the SSLCommerz payment method is supported",
	},
}

// CheckoutRequest contact fields for the cart checkout
type CheckoutRequest struct {
	Address       string `json:"address" valid:"address"`
	Phone         string `json:"phone" valid:"phone"`
	PaymentMethod string `json:"payment_method" valid:"payment_method"`
}

// ValidateCheckout binds and validates the cart checkout form
func ValidateCheckout(c *gin.Context) (*CheckoutRequest, error) {
	req := &CheckoutRequest{}
	if err := bindAndValidate(c, req, contactRules, contactMessages); err != nil {
		return nil, err
	}
	return req, nil
}

// QuantityCheckoutRequest contact fields plus a quantity, used by the
// single product, flash sale and pre-order checkouts. A zero quantity
// means one unit.
type QuantityCheckoutRequest struct {
	Quantity      uint64 `json:"quantity"`
	Address       string `json:"address" valid:"address"`
	Phone         string `json:"phone" valid:"phone"`
	PaymentMethod string `json:"payment_method" valid:"payment_method"`
}

// ValidateQuantityCheckout binds and validates a quantity checkout form
func ValidateQuantityCheckout(c *gin.Context) (*QuantityCheckoutRequest, error) {
	req := &QuantityCheckoutRequest{}
	if err := bindAndValidate(c, req, contactRules, contactMessages); err != nil {
		return nil, err
	}
	return req, nil
}

// RentalCheckoutRequest contact fields plus the rental period
type RentalCheckoutRequest struct {
	StartDate     string `json:"rental_start_date" valid:"rental_start_date"`
	EndDate       string `json:"rental_end_date" valid:"rental_end_date"`
	Address       string `json:"address" valid:"address"`
	Phone         string `json:"phone" valid:"phone"`
	PaymentMethod string `json:"payment_method" valid:"payment_method"`
}

// ValidateRentalCheckout binds and validates the rental checkout form
func ValidateRentalCheckout(c *gin.Context) (*RentalCheckoutRequest, error) {
	req := &RentalCheckoutRequest{}

	rules := govalidator.MapData{
		"rental_start_date": []string{"required", "date"},
		"rental_end_date":   []string{"required", "date"},
	}
	messages := govalidator.MapData{
		"rental_start_date": []string{
			"required:Rental start date is required",
			"date:Rental start date must be a valid date",
		},
		"rental_end_date": []string{
			"required:Rental end date is required",
			"date:Rental end date must be a valid date",
		},
	}
	for field, rule := range contactRules {
		rules[field] = rule
	}
	for field, message := range contactMessages {
		messages[field] = message
	}

	if err := bindAndValidate(c, req, rules, messages); err != nil {
		return nil, err
	}
	return req, nil
}

// Period parses the rental dates, layout 2006-01-02
func (r *RentalCheckoutRequest) Period() (time.Time, time.Time, error) {
	start, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
