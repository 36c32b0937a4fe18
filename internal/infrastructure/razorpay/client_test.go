package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL+"/", "rzp_key", "rzp_secret", "hook_secret")
	require.NoError(t, err)
	return client
}

func TestCreateOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_key", user)
		assert.Equal(t, "rzp_secret", pass)

		var req createOrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 5000, req.Amount)
		assert.Equal(t, "INR", req.Currency)
		assert.Equal(t, "rcpt_1_abc", req.Receipt)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_XYZ","amount":5000,"currency":"INR","receipt":"rcpt_1_abc","status":"created"}`))
	})

	order, err := client.CreateOrder(context.Background(), 5000, "INR", "rcpt_1_abc")
	require.NoError(t, err)
	assert.Equal(t, "order_XYZ", order.ID)
	assert.EqualValues(t, 5000, order.Amount)
	assert.Equal(t, "rcpt_1_abc", order.Receipt)
}

func TestCreateOrder_GatewayErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount exceeds maximum"}}`))
	})
	_, err := client.CreateOrder(context.Background(), 5000, "INR", "r")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount exceeds maximum")

	client = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err = client.CreateOrder(context.Background(), 5000, "INR", "r")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")

	client = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":5000}`))
	})
	_, err = client.CreateOrder(context.Background(), 5000, "INR", "r")
	assert.Error(t, err)
}

func TestNewClient_RequiresSecrets(t *testing.T) {
	_, err := NewClient("https://api.razorpay.com", "", "secret", "hook")
	assert.Error(t, err)
	_, err = NewClient("https://api.razorpay.com", "key", "secret", "")
	assert.Error(t, err)
}

func TestVerifySignatures(t *testing.T) {
	client, err := NewClient("https://api.razorpay.com", "rzp_key", "rzp_secret", "hook_secret")
	require.NoError(t, err)

	sig := Sign([]byte("order_1|pay_1"), "rzp_secret")
	assert.Len(t, sig, 64)
	assert.True(t, client.VerifyPaymentSignature("order_1", "pay_1", sig))
	assert.True(t, client.VerifyPaymentSignature("order_1", "pay_1", strings.ToUpper(sig)))
	assert.False(t, client.VerifyPaymentSignature("order_1", "pay_2", sig))
	assert.False(t, client.VerifyPaymentSignature("order_1", "pay_1", ""))

	body := []byte(`{"event":"payment.captured"}`)
	hookSig := Sign(body, "hook_secret")
	assert.True(t, client.VerifyWebhookSignature(body, hookSig))
	assert.False(t, client.VerifyWebhookSignature(body, Sign(body, "rzp_secret")))
	assert.False(t, client.VerifyWebhookSignature([]byte(`{"event":"order.paid"}`), hookSig))
}
