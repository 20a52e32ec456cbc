package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"seva-donate/internal/core/port"
)

// ErrCredentialsMissing is returned by New when either gateway secret
// is absent. The caller is expected to run without a gateway rather
// than fail startup.
var ErrCredentialsMissing = errors.New("razorpay credentials not configured")

const defaultBaseURL = "https://api.razorpay.com"

// currency is fixed: the gateway settles donations in paisa.
const currency = "INR"

// Client talks to the Razorpay REST API using basic auth. It is an
// outbound adapter implementing port.PaymentGateway; all amounts cross
// this boundary in major units and are converted to paisa here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the gateway origin, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New resolves gateway credentials once and returns a typed client.
// Both secrets are required; ErrCredentialsMissing is returned when
// either is empty so no call site needs its own presence check.
func New(keyID, keySecret string, opts ...Option) (*Client, error) {
	if keyID == "" || keySecret == "" {
		return nil, ErrCredentialsMissing
	}
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		keyID:      keyID,
		keySecret:  keySecret,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// payment is the subset of the gateway's payment entity the workflow
// inspects.
type payment struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// apiError is the gateway's error envelope.
type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// Capture finalizes an authorized payment. The gateway expects the
// amount in paisa alongside the fixed currency code. A response that is
// non-2xx or does not report status "captured" is an error carrying the
// gateway's description when one is available.
func (c *Client) Capture(ctx context.Context, paymentID string, amount int64) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"amount":   amount * 100,
		"currency": currency,
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/payments/%s/capture", c.baseURL, url.PathEscape(paymentID))
	raw, status, err := c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, errors.New(errorDescription(raw))
	}

	var p payment
	if err = json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode capture response: %w", err)
	}
	if p.Status != "captured" {
		return nil, fmt.Errorf("capture returned status %q", p.Status)
	}
	return raw, nil
}

// Fetch reads the current state of a payment.
func (c *Client) Fetch(ctx context.Context, paymentID string) (*port.GatewayPayment, error) {
	endpoint := fmt.Sprintf("%s/v1/payments/%s", c.baseURL, url.PathEscape(paymentID))
	raw, status, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, errors.New(errorDescription(raw))
	}

	var p payment
	if err = json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}
	return &port.GatewayPayment{ID: p.ID, Status: p.Status, Raw: raw}, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader) (json.RawMessage, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, 0, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return raw, resp.StatusCode, nil
}

func errorDescription(raw []byte) string {
	var e apiError
	if err := json.Unmarshal(raw, &e); err == nil && e.Error.Description != "" {
		return e.Error.Description
	}
	return "gateway rejected the request"
}
