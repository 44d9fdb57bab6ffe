package sslcommerz

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() *InitRequest {
	return &InitRequest{
		Amount:        decimal.RequireFromString("150.00"),
		Currency:      "BDT",
		TranID:        "ORDER42-1a2b3c4d",
		ProductName:   "Wireless Mouse, Mechanical Keyboard",
		CustomerName:  "Arif Hossain",
		CustomerEmail: "arif@example.com",
		Address:       "House 7, Road 3, Dhanmondi",
		Phone:         "01700000000",
		SuccessURL:    "http://localhost:3000/v1/payments/sslcz/success",
		FailURL:       "http://localhost:3000/v1/payments/sslcz/fail",
		CancelURL:     "http://localhost:3000/v1/payments/sslcz/cancel",
		IPNURL:        "http://localhost:3000/v1/payments/sslcz/ipn",
	}
}

func TestInitiateSessionV4(t *testing.T) {
	var form url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, initPathV4, r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":         "SUCCESS",
			"sessionkey":     "A1B2C3",
			"GatewayPageURL": "https://sandbox.example/EasyCheckOut/A1B2C3",
		})
	}))
	defer server.Close()

	client := New("teststore", "secret", server.URL)
	resp, err := client.InitiateSession(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://sandbox.example/EasyCheckOut/A1B2C3", resp.RedirectURL())
	assert.Equal(t, "A1B2C3", resp.SessionKey)

	assert.Equal(t, "teststore", form.Get("store_id"))
	assert.Equal(t, "secret", form.Get("store_passwd"))
	assert.Equal(t, "150.00", form.Get("total_amount"))
	assert.Equal(t, "BDT", form.Get("currency"))
	assert.Equal(t, "ORDER42-1a2b3c4d", form.Get("tran_id"))
	assert.Equal(t, "arif@example.com", form.Get("cus_email"))
	assert.Equal(t, "01700000000", form.Get("cus_phone"))
	assert.Equal(t, "0", form.Get("emi_option"))
	assert.Equal(t, "Bangladesh", form.Get("cus_country"))
	assert.Equal(t, "NO", form.Get("shipping_method"))
	assert.Equal(t, "general", form.Get("product_profile"))
}

func TestInitiateSessionFallsBackToV3(t *testing.T) {
	var v4Calls, v3Calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case initPathV4:
			v4Calls++
			_ = json.NewEncoder(w).Encode(map[string]string{
				"status":       "FAILED",
				"failedreason": "version not enabled",
			})
		case initPathV3:
			v3Calls++
			_ = json.NewEncoder(w).Encode(map[string]string{
				"status":             "SUCCESS",
				"redirectGatewayURL": "https://sandbox.example/gw/v3session",
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := New("teststore", "secret", server.URL)
	resp, err := client.InitiateSession(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://sandbox.example/gw/v3session", resp.RedirectURL())
	assert.Equal(t, 1, v4Calls)
	assert.Equal(t, 1, v3Calls)
}

func TestInitiateSessionNoGatewayURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":       "FAILED",
			"failedreason": "store credentials invalid",
		})
	}))
	defer server.Close()

	client := New("teststore", "wrongpass", server.URL)
	resp, err := client.InitiateSession(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrNoGatewayURL)
	// the body is still handed back for the transaction record
	require.NotNil(t, resp)
	assert.Equal(t, "FAILED", resp.Status)
	assert.Equal(t, "store credentials invalid", resp.FailedReason)
	assert.NotNil(t, resp.Raw)
}

func TestInitiateSessionTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New("teststore", "secret", server.URL)
	resp, err := client.InitiateSession(context.Background(), testRequest())
	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestBuildInitPayloadFallbacks(t *testing.T) {
	client := New("teststore", "secret", sandboxBaseURL)
	payload := client.buildInitPayload(&InitRequest{
		Amount: decimal.RequireFromString("99.9"),
		TranID: "ORDER1-abcdef01",
	})

	assert.Equal(t, "99.90", payload["total_amount"])
	assert.Equal(t, "BDT", payload["currency"])
	assert.Equal(t, fallbackEmail, payload["cus_email"])
	assert.Equal(t, fallbackAddress, payload["cus_add1"])
	assert.Equal(t, fallbackPhone, payload["cus_phone"])
	assert.Equal(t, "Guest", payload["cus_name"])
	assert.Equal(t, "Order Items", payload["product_name"])
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "arif@example.com", SanitizeEmail("arif@example.com"))
	assert.Equal(t, "arif@example.com", SanitizeEmail("  arif@example.com  "))
	assert.Equal(t, fallbackEmail, SanitizeEmail(""))
	assert.Equal(t, fallbackEmail, SanitizeEmail("not-an-email"))
}

func TestValidateTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, validationPath, r.URL.Path)
		query := r.URL.Query()
		require.Equal(t, "VAL123", query.Get("val_id"))
		require.Equal(t, "teststore", query.Get("store_id"))
		require.Equal(t, "secret", query.Get("store_passwd"))
		require.Equal(t, "1", query.Get("v"))
		require.Equal(t, "json", query.Get("format"))

		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":       "VALID",
			"tran_id":      "ORDER42-1a2b3c4d",
			"val_id":       "VAL123",
			"amount":       "150.00",
			"currency":     "BDT",
			"bank_tran_id": "BANK987",
			"card_type":    "VISA-Dutch Bangla",
		})
	}))
	defer server.Close()

	client := New("teststore", "secret", server.URL)
	validation, err := client.ValidateTransaction(context.Background(), "VAL123")
	require.NoError(t, err)
	assert.True(t, validation.IsValid())
	assert.Equal(t, "ORDER42-1a2b3c4d", validation.TranID)
	assert.Equal(t, "150.00", validation.Amount)
	assert.NotNil(t, validation.Raw)
}

func TestValidateTransactionStatuses(t *testing.T) {
	cases := []struct {
		status string
		valid  bool
	}{
		{"VALID", true},
		{"VALIDATED", true},
		{"INVALID_TRANSACTION", false},
		{"FAILED", false},
		{"", false},
	}
	for _, tc := range cases {
		v := ValidationResponse{Status: tc.status}
		assert.Equal(t, tc.valid, v.IsValid(), "status %q", tc.status)
	}
}

func TestValidateTransactionTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New("teststore", "secret", server.URL)
	validation, err := client.ValidateTransaction(context.Background(), "VAL123")
	require.Error(t, err)
	assert.Nil(t, validation)
}

func TestValidateTransactionMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := New("teststore", "secret", server.URL)
	_, err := client.ValidateTransaction(context.Background(), "VAL123")
	require.Error(t, err)
}
