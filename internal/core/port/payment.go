package port

import (
	"context"
	"encoding/json"
	"time"

	"seva-donate/internal/core/domain"
)

// GatewayPayment is the payment entity as reported by the gateway's
// read endpoint. Raw carries the full response body for passthrough.
type GatewayPayment struct {
	ID     string
	Status string
	Raw    json.RawMessage
}

// PaymentGateway is the outbound port to the payment provider's REST
// API. Capture finalizes a previously authorized charge; Fetch reads
// the current payment state. Both return plain errors; folding into
// result shapes is the usecase's job.
type PaymentGateway interface {
	Capture(ctx context.Context, paymentID string, amount int64) (json.RawMessage, error)
	Fetch(ctx context.Context, paymentID string) (*GatewayPayment, error)
}

// PaymentUseCase drives the capture workflow. Capture and RetryCapture
// never fail with an error: every gateway, network or configuration
// problem is folded into the returned CaptureResult.
type PaymentUseCase interface {
	// Capture attempts to move the referenced authorization to
	// captured. On failure the authorization is left untouched and the
	// result carries status "authorized".
	Capture(ctx context.Context, req domain.CaptureRequest) domain.CaptureResult

	// RetryCapture waits delay, re-checks the payment's state and
	// captures only when it is still authorized. Already-captured
	// payments short-circuit to success; any other state is terminal.
	// At most one capture attempt is made per invocation.
	RetryCapture(ctx context.Context, req domain.CaptureRequest, delay time.Duration) domain.CaptureResult

	// Stats aggregates recorded donations for a campaign, or for all
	// campaigns when campaignID is empty. Without a configured ledger
	// it returns zero-valued stats.
	Stats(ctx context.Context, campaignID string) (*domain.DonationStats, error)
}
