package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"seva-donate/internal/core/domain"
	"seva-donate/internal/core/port"
)

// DefaultRetryDelay is how long a retry waits before re-checking the
// payment, giving the gateway's asynchronous settlement time to resolve
// the authorization out-of-band.
const DefaultRetryDelay = 5 * time.Second

// PaymentUseCase drives the capture and retry-capture workflows. The
// gateway may be nil when credentials were not configured; every
// attempt then fails fast without a network call. The ledger may be nil
// when no database is configured; captures are then not recorded and
// stats are zero-valued. Neither workflow ever returns an error: all
// failures are folded into the CaptureResult.
type PaymentUseCase struct {
	gateway port.PaymentGateway
	ledger  port.DonationRepository
	logger  *slog.Logger

	// now supplies ledger timestamps. Injected so tests can pin it.
	now func() time.Time
}

// NewPaymentUseCase creates a payment usecase. gateway and ledger are
// both optional.
func NewPaymentUseCase(gateway port.PaymentGateway, ledger port.DonationRepository, logger *slog.Logger) *PaymentUseCase {
	return &PaymentUseCase{
		gateway: gateway,
		ledger:  ledger,
		logger:  logger,
		now:     time.Now,
	}
}

// Capture attempts to move the referenced authorization to captured.
// Gateway and network failures leave the authorization untouched, so
// the failure result carries status "authorized" and the caller may
// hand the payment to RetryCapture.
func (u *PaymentUseCase) Capture(ctx context.Context, req domain.CaptureRequest) domain.CaptureResult {
	if req.CampaignID == "" {
		req.CampaignID = domain.DefaultCampaignTag
	}
	if u.gateway == nil {
		return domain.CaptureResult{
			Success: false,
			Status:  domain.StatusAuthorized,
			Error:   "payment gateway credentials not configured",
		}
	}

	raw, err := u.gateway.Capture(ctx, req.PaymentID, req.Amount)
	if err != nil {
		u.logger.Error("payment capture failed",
			slog.String("payment_id", req.PaymentID),
			slog.Any("error", err))
		return domain.CaptureResult{
			Success: false,
			Status:  domain.StatusAuthorized,
			Error:   err.Error(),
		}
	}

	u.logger.Info("payment captured",
		slog.String("payment_id", req.PaymentID),
		slog.Int64("amount", req.Amount),
		slog.String("campaign_id", req.CampaignID))
	u.record(ctx, req)
	return domain.CaptureResult{Success: true, Status: domain.StatusCaptured, Data: raw}
}

// RetryCapture waits delay, then re-checks the payment before capturing.
// An already-captured payment short-circuits to success without a
// capture call; any state other than "authorized" is terminal. At most
// one capture attempt is made per invocation — scheduling further
// retries is the caller's business.
func (u *PaymentUseCase) RetryCapture(ctx context.Context, req domain.CaptureRequest, delay time.Duration) domain.CaptureResult {
	if req.CampaignID == "" {
		req.CampaignID = domain.DefaultCampaignTag
	}
	if u.gateway == nil {
		return domain.CaptureResult{
			Success: false,
			Status:  domain.StatusAuthorized,
			Error:   "payment gateway credentials not configured",
		}
	}
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return domain.CaptureResult{
			Success: false,
			Status:  domain.StatusError,
			Error:   ctx.Err().Error(),
		}
	}

	p, err := u.gateway.Fetch(ctx, req.PaymentID)
	if err != nil {
		u.logger.Error("payment status check failed",
			slog.String("payment_id", req.PaymentID),
			slog.Any("error", err))
		return domain.CaptureResult{
			Success: false,
			Status:  domain.StatusError,
			Error:   err.Error(),
		}
	}

	switch p.Status {
	case "captured":
		// Settled out-of-band while we waited; do not double-capture.
		u.record(ctx, req)
		return domain.CaptureResult{Success: true, Status: domain.StatusCaptured, Data: p.Raw}
	case "authorized":
		return u.Capture(ctx, req)
	default:
		return domain.CaptureResult{
			Success: false,
			Status:  domain.StatusError,
			Error:   fmt.Sprintf("payment status is %q, cannot capture", p.Status),
		}
	}
}

// Stats aggregates recorded donations. Without a ledger it reports the
// zero-valued placeholder.
func (u *PaymentUseCase) Stats(ctx context.Context, campaignID string) (*domain.DonationStats, error) {
	if u.ledger == nil {
		return &domain.DonationStats{}, nil
	}
	return u.ledger.Stats(ctx, campaignID)
}

// record appends a captured payment to the ledger, best effort. Ledger
// failures must never fail a capture that the gateway already settled.
func (u *PaymentUseCase) record(ctx context.Context, req domain.CaptureRequest) {
	if u.ledger == nil {
		return
	}
	d := domain.Donation{
		PaymentID:  req.PaymentID,
		CampaignID: req.CampaignID,
		Amount:     req.Amount * 100,
		Status:     domain.StatusCaptured,
		CreatedAt:  u.now(),
	}
	if err := u.ledger.Record(ctx, d); err != nil {
		u.logger.Warn("failed to record donation",
			slog.String("payment_id", req.PaymentID),
			slog.Any("error", err))
	}
}
