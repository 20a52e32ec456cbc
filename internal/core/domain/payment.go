package domain

import (
	"encoding/json"
	"net/url"
)

// Payment result statuses as reported back to the presentation layer.
// They mirror the gateway's payment lifecycle: a capture either lands
// in "captured", leaves the authorization untouched ("authorized"), or
// fails terminally ("error").
const (
	StatusCaptured   = "captured"
	StatusAuthorized = "authorized"
	StatusError      = "error"
)

// DefaultCampaignTag is substituted when a payment arrives without a
// campaign reference.
const DefaultCampaignTag = "default"

// CaptureRequest carries a gateway authorization reference to be
// captured. Amount is in major currency units (rupees); the gateway
// adapter converts to paisa. It is never persisted.
type CaptureRequest struct {
	PaymentID  string
	Amount     int64
	CampaignID string
}

// CaptureResult is the uniform outcome shape of the capture and
// retry-capture workflows. Data holds the gateway's raw payment entity
// on success; Error holds a gateway or network description on failure.
type CaptureResult struct {
	Success bool
	Status  string
	Data    json.RawMessage
	Error   string
}

// ResultRedirectURL builds the success-page target the checkout flow
// navigates to once a capture resolves. Status is one of the status
// constants above; campaignID may be empty.
func ResultRedirectURL(campaignID, paymentID, status string) string {
	q := url.Values{}
	if campaignID != "" {
		q.Set("campaign", campaignID)
	}
	q.Set("payment", paymentID)
	q.Set("status", status)
	return "/success?" + q.Encode()
}
