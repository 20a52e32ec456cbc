package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"seva-donate/internal/core/domain"
)

// DonationRepository implements port.DonationRepository using pgxpool
// for PostgreSQL.
type DonationRepository struct {
	pool *pgxpool.Pool
}

// NewDonationRepository returns a new repository instance.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

// Record appends a captured payment to the ledger. The insert is keyed
// on payment id, so a retry that re-reports the same capture updates
// the existing row instead of double-counting.
func (r *DonationRepository) Record(ctx context.Context, d domain.Donation) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO donations
    (payment_id, campaign_id, amount, status, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (payment_id) DO UPDATE SET status = EXCLUDED.status`,
		d.PaymentID, d.CampaignID, d.Amount, d.Status, d.CreatedAt)
	return err
}

// Stats aggregates captured donations for one campaign, or across all
// campaigns when campaignID is empty.
func (r *DonationRepository) Stats(ctx context.Context, campaignID string) (*domain.DonationStats, error) {
	var (
		stats domain.DonationStats
		last  *time.Time
	)
	err := r.pool.QueryRow(ctx, `SELECT
    COALESCE(SUM(amount), 0),
    COUNT(*),
    MAX(created_at)
FROM donations
WHERE status = 'captured'
  AND ($1 = '' OR campaign_id = $1)`, campaignID).
		Scan(&stats.TotalDonations, &stats.DonationCount, &last)
	if err != nil {
		return nil, err
	}
	stats.LastDonation = last
	return &stats, nil
}
