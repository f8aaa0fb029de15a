package square

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bakery/internal/config"
	apperrors "bakery/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.CheckoutConfig{
		AccessToken: "sq-token",
		LocationID:  "LOC1",
		BaseURL:     srv.URL,
	}, zap.NewNop())
}

func testRequest() CreatePaymentLinkRequest {
	return CreatePaymentLinkRequest{
		IdempotencyKey: "key-1",
		Order: Order{
			LocationID: "LOC1",
			LineItems: []LineItem{
				{Name: "Banana Bread", Quantity: "2", BasePriceMoney: Money{Amount: 1300, Currency: "USD"}},
			},
			Metadata:    map[string]string{"pickupDate": "2025-10-15", "addressZip": ""},
			Note:        "Online order from nillascreations.com",
			ReferenceID: "web-1760454240000",
		},
		CheckoutOptions: &CheckoutOptions{RedirectURL: "https://www.nillascreations.com/order-confirmed"},
	}
}

func TestCreatePaymentLink_Success(t *testing.T) {
	var got map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/online-checkout/payment-links", r.URL.Path)
		assert.Equal(t, "Bearer sq-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"payment_link":{"id":"PL1","url":"https://square.link/u/abc","order_id":"O1"}}`))
	})

	link, err := client.CreatePaymentLink(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "https://square.link/u/abc", link.URL)
	assert.Equal(t, "PL1", link.ID)

	assert.Equal(t, "key-1", got["idempotency_key"])
	order := got["order"].(map[string]interface{})
	assert.Equal(t, "LOC1", order["location_id"])
	item := order["line_items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "2", item["quantity"])
	money := item["base_price_money"].(map[string]interface{})
	assert.Equal(t, float64(1300), money["amount"])
	assert.Equal(t, "USD", money["currency"])
	assert.Equal(t, "web-1760454240000", order["reference_id"])
	metadata := order["metadata"].(map[string]interface{})
	assert.Equal(t, "2025-10-15", metadata["pickupDate"])
	assert.Equal(t, "", metadata["addressZip"])
	assert.Equal(t, "Online order from nillascreations.com", got["payment_note"])
	options := got["checkout_options"].(map[string]interface{})
	assert.Equal(t, "https://www.nillascreations.com/order-confirmed", options["redirect_url"])
}

func TestCreatePaymentLink_Rejected(t *testing.T) {
	body := `{"errors":[{"category":"INVALID_REQUEST_ERROR","code":"INVALID_VALUE","detail":"Invalid location id."}]}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	})

	link, err := client.CreatePaymentLink(context.Background(), testRequest())

	require.Error(t, err)
	assert.Nil(t, link)
	var ppErr *apperrors.PaymentProcessorError
	require.ErrorAs(t, err, &ppErr)
	assert.Equal(t, http.StatusBadRequest, ppErr.StatusCode)
	assert.Equal(t, "Invalid location id.", ppErr.Message)
	assert.JSONEq(t, body, ppErr.Body)
}

func TestCreatePaymentLink_RejectedWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.CreatePaymentLink(context.Background(), testRequest())

	var ppErr *apperrors.PaymentProcessorError
	require.ErrorAs(t, err, &ppErr)
	assert.Equal(t, http.StatusUnauthorized, ppErr.StatusCode)
	assert.Equal(t, "Unauthorized", ppErr.Message)
}

func TestCreatePaymentLink_ServerErrorIsNotRetried(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"errors":[{"category":"API_ERROR","code":"SERVICE_UNAVAILABLE","detail":"Try again later."}]}`))
	})

	_, err := client.CreatePaymentLink(context.Background(), testRequest())

	ppErr, ok := apperrors.IsPaymentProcessorError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, ppErr.StatusCode)
	assert.Equal(t, "Try again later.", ppErr.Message)
	assert.Equal(t, 1, calls)
}

func TestCreatePaymentLink_NoURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"payment_link":{"id":"PL1"}}`))
	})

	_, err := client.CreatePaymentLink(context.Background(), testRequest())

	var ppErr *apperrors.PaymentProcessorError
	require.ErrorAs(t, err, &ppErr)
	assert.Equal(t, "no checkout URL returned", ppErr.Message)
}

func TestCreatePaymentLink_Unreachable(t *testing.T) {
	client := NewClient(config.CheckoutConfig{BaseURL: "http://127.0.0.1:1"}, zap.NewNop())

	_, err := client.CreatePaymentLink(context.Background(), testRequest())

	ppErr, ok := apperrors.IsPaymentProcessorError(err)
	require.True(t, ok)
	assert.Zero(t, ppErr.StatusCode)
	assert.Contains(t, ppErr.Message, "request failed")
}
