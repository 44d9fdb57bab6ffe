// Package sslcommerz implements the SSLCommerz payment gateway client:
// hosted-checkout session initiation and server-side transaction
// validation.
package sslcommerz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"

	"github.com/go-resty/resty/v2"
)

const (
	sandboxBaseURL = "https://sandbox.sslcommerz.com"
	liveBaseURL    = "https://securepay.sslcommerz.com"

	initPathV4     = "/gwprocess/v4/api.php"
	initPathV3     = "/gwprocess/v3/api.php"
	validationPath = "/validator/api/validationserverAPI.php"

	// The initiation call blocks the handling worker for its full round
	// trip; the validation call is bounded tighter.
	defaultInitTimeout     = 20 * time.Second
	defaultValidateTimeout = 15 * time.Second

	fallbackEmail   = "customer@example.com"
	fallbackAddress = "Address"
	fallbackPhone   = "00000000000"
)

// ErrNoGatewayURL the gateway answered but did not hand out a redirect
// URL, on either endpoint version.
var ErrNoGatewayURL = errors.New("sslcommerz: gateway URL not received")

// Client SSLCommerz API client
type Client struct {
	initClient     *resty.Client
	validateClient *resty.Client
	storeID        string
	storePass      string
	baseURL        string
}

// NewClient builds a client from configuration
func NewClient() *Client {
	baseURL := sandboxBaseURL
	if !config.GetBool("gateway.sandbox", true) {
		baseURL = liveBaseURL
	}
	return New(
		config.GetString("gateway.store_id"),
		config.GetString("gateway.store_password"),
		baseURL,
	)
}

// New builds a client with explicit credentials, used directly by tests
func New(storeID, storePass, baseURL string) *Client {
	return &Client{
		initClient:     resty.New().SetTimeout(defaultInitTimeout),
		validateClient: resty.New().SetTimeout(defaultValidateTimeout),
		storeID:        storeID,
		storePass:      storePass,
		baseURL:        strings.TrimRight(baseURL, "/"),
	}
}

// InitiateSession opens a payment session for the given request. It posts
// the form to the v4 endpoint and falls back once to v3 when the first
// attempt fails or returns no redirect URL. The returned response is
// non-nil whenever the gateway produced a body, even on error, so the
// caller can record it on the transaction.
func (c *Client) InitiateSession(ctx context.Context, req *InitRequest) (*InitResponse, error) {
	payload := c.buildInitPayload(req)

	resp, err := c.callInit(ctx, c.baseURL+initPathV4, payload)
	if err == nil && resp.RedirectURL() != "" {
		return resp, nil
	}
	if err != nil {
		logger.WarnString("SSLCommerz", "Init", fmt.Sprintf("v4 initiation failed for %s: %v", req.TranID, err))
	}

	// One-shot fallback to the previous endpoint version
	respV3, errV3 := c.callInit(ctx, c.baseURL+initPathV3, payload)
	if errV3 == nil && respV3.RedirectURL() != "" {
		return respV3, nil
	}

	if resp == nil {
		resp = respV3
	}
	if resp == nil {
		if err == nil {
			err = errV3
		}
		return nil, fmt.Errorf("sslcommerz: initiation failed: %w", err)
	}

	logger.ErrorString("SSLCommerz", "Init", fmt.Sprintf("no gateway URL for %s, status=%s reason=%s",
		req.TranID, resp.Status, resp.FailedReason))
	return resp, ErrNoGatewayURL
}

func (c *Client) callInit(ctx context.Context, url string, payload map[string]string) (*InitResponse, error) {
	resp, err := c.initClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(payload).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("sslcommerz: init request: %w", err)
	}

	body := resp.Body()
	var initResp InitResponse
	if err := json.Unmarshal(body, &initResp); err != nil {
		// Keep whatever the gateway sent for diagnosis
		return &InitResponse{Raw: map[string]interface{}{"raw": string(body)}}, nil
	}

	raw := map[string]interface{}{}
	if err := json.Unmarshal(body, &raw); err == nil {
		initResp.Raw = raw
	}
	return &initResp, nil
}

func (c *Client) buildInitPayload(req *InitRequest) map[string]string {
	currency := req.Currency
	if currency == "" {
		currency = "BDT"
	}
	productName := req.ProductName
	if productName == "" {
		productName = "Order Items"
	}
	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Guest"
	}

	return map[string]string{
		"store_id":         c.storeID,
		"store_passwd":     c.storePass,
		"total_amount":     req.Amount.StringFixed(2),
		"currency":         currency,
		"tran_id":          req.TranID,
		"success_url":      req.SuccessURL,
		"fail_url":         req.FailURL,
		"cancel_url":       req.CancelURL,
		"ipn_url":          req.IPNURL,
		"emi_option":       "0",
		"cus_name":         customerName,
		"cus_email":        SanitizeEmail(req.CustomerEmail),
		"cus_add1":         fallbackString(req.Address, fallbackAddress),
		"cus_city":         "City",
		"cus_postcode":     "0000",
		"cus_country":      "Bangladesh",
		"cus_phone":        fallbackString(req.Phone, fallbackPhone),
		"shipping_method":  "NO",
		"product_name":     productName,
		"product_category": "General",
		"product_profile":  "general",
	}
}

// ValidateTransaction performs the independent server-to-server
// verification of a success callback, keyed by the gateway's val_id.
func (c *Client) ValidateTransaction(ctx context.Context, valID string) (*ValidationResponse, error) {
	resp, err := c.validateClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"val_id":       valID,
			"store_id":     c.storeID,
			"store_passwd": c.storePass,
			"v":            "1",
			"format":       "json",
		}).
		Get(c.baseURL + validationPath)
	if err != nil {
		return nil, fmt.Errorf("sslcommerz: validation request: %w", err)
	}

	body := resp.Body()
	var validation ValidationResponse
	if err := json.Unmarshal(body, &validation); err != nil {
		return nil, fmt.Errorf("sslcommerz: decode validation response: %w", err)
	}

	raw := map[string]interface{}{}
	if err := json.Unmarshal(body, &raw); err == nil {
		validation.Raw = raw
	}
	return &validation, nil
}

// SanitizeEmail substitutes a syntactically valid address when the
// actor's email is missing or malformed.
func SanitizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return fallbackEmail
	}
	return email
}

func fallbackString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
