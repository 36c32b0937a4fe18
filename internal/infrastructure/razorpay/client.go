package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
)

const defaultTimeout = 15 * time.Second

// Client talks to a Razorpay-compatible orders API. It is built once at
// startup and shared by all requests.
type Client struct {
	BaseURL       string
	keyID         string
	keySecret     string
	webhookSecret string
	httpClient    *http.Client
}

func NewClient(baseURL, keyID, keySecret, webhookSecret string) (*Client, error) {
	if keyID == "" || keySecret == "" {
		return nil, errors.New("razorpay key id and secret are required")
	}
	if webhookSecret == "" {
		return nil, errors.New("razorpay webhook secret is required")
	}
	return &Client{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		httpClient:    &http.Client{Timeout: defaultTimeout},
	}, nil
}

func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*domain.GatewayOrder, error) {
	requestBodyBytes, err := json.Marshal(createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/orders", c.BaseURL), bytes.NewReader(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.SetBasicAuth(c.keyID, c.keySecret)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var errResp errorResponse
		if err := json.Unmarshal(responseBodyBytes, &errResp); err != nil || errResp.Error.Description == "" {
			return nil, fmt.Errorf("razorpay returned status %d", response.StatusCode)
		}
		return nil, fmt.Errorf("razorpay returned status %d: %s", response.StatusCode, errResp.Error.Description)
	}

	var order orderResponse
	if err := json.Unmarshal(responseBodyBytes, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, errors.New("razorpay order response without id")
	}
	return &domain.GatewayOrder{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
	}, nil
}

// VerifyPaymentSignature checks the checkout signature, an HMAC-SHA256 of
// "order_id|payment_id" keyed with the API secret.
func (c *Client) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return validSignature([]byte(orderID+"|"+paymentID), c.keySecret, signature)
}

// VerifyWebhookSignature checks the HMAC-SHA256 of the raw webhook body keyed
// with the webhook secret.
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	return validSignature(body, c.webhookSecret, signature)
}

func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func validSignature(payload []byte, secret, signature string) bool {
	expected := Sign(payload, secret)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature))))
}
