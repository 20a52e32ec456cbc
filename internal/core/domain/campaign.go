package domain

import "time"

// Campaign represents a single fundraising appeal with its display
// content and an active flag. Timestamps are serialized as RFC 3339 so
// the persisted document stays human-readable.
type Campaign struct {
	ID               string    `json:"id"`
	Header           string    `json:"header"`
	BannerImageURL   string    `json:"bannerImageUrl"`
	CampaignImageURL string    `json:"campaignImageUrl"`
	Details          string    `json:"details"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CampaignCollection maps campaign id to record. The collection is the
// entire persisted state of the store; insertion order carries no
// meaning.
type CampaignCollection map[string]Campaign

// DefaultCampaignID is the fixed id of the campaign synthesized when
// the store is observed empty.
const DefaultCampaignID = "donate-iskcon-hubli-dharwad"

const defaultCampaignDetails = `Join us in our mission to serve the community through various seva activities. Your generous donation will help us continue our work in temple construction, educational frameworks, annadanam (free food distribution), and special festival celebrations.

Every contribution, no matter how small, makes a significant difference in the lives of those we serve. Together, we can build a stronger, more compassionate community.

Your support enables us to:
- Maintain and construct temples that serve as spiritual centers
- Provide educational opportunities for underprivileged children
- Organize annadanam to feed the needy
- Celebrate festivals that bring communities together
- Support various other social welfare activities

Thank you for your generosity and for being part of our noble mission.`

// DefaultCampaign returns the promotional record used to bootstrap an
// empty collection. Both timestamps are set to now.
func DefaultCampaign(now time.Time) Campaign {
	return Campaign{
		ID:               DefaultCampaignID,
		Header:           "Support Our Noble Cause",
		BannerImageURL:   "https://www.fueladream.com/public/uploads/0894810651297247.jpg",
		CampaignImageURL: "https://www.fueladream.com/public/uploads/0894810651297247.jpg",
		Details:          defaultCampaignDetails,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
