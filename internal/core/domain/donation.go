package domain

import "time"

// Donation is one captured payment appended to the ledger. Amount is
// stored in minor currency units (paisa), matching what the gateway
// settles.
type Donation struct {
	PaymentID  string
	CampaignID string
	Amount     int64
	Status     string
	CreatedAt  time.Time
}

// DonationStats aggregates the ledger for one campaign or for all
// campaigns. TotalDonations is in minor currency units. LastDonation
// is nil when no donation has been recorded.
type DonationStats struct {
	TotalDonations int64      `json:"totalDonations"`
	DonationCount  int64      `json:"donationCount"`
	LastDonation   *time.Time `json:"lastDonation"`
}
