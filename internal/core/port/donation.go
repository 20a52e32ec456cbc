package port

import (
	"context"

	"seva-donate/internal/core/domain"
)

// DonationRepository is the outbound port for the optional donation
// ledger. Record must be idempotent on payment id so a capture retry
// does not double-count.
type DonationRepository interface {
	Record(ctx context.Context, d domain.Donation) error
	Stats(ctx context.Context, campaignID string) (*domain.DonationStats, error)
}
