package domain

import "time"

// Donation rows are append-only; nothing updates or deletes them.
type Donation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Reference  string    `gorm:"column:reference;unique;not null" json:"reference"`
	UserID     uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	CampaignID uint      `gorm:"column:campaign_id;not null;index" json:"campaign_id"`
	Amount     float64   `gorm:"column:amount;not null" json:"amount"`
	DonatedAt  time.Time `gorm:"column:donated_at;not null" json:"donated_at"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonationDetail is a donation joined with its campaign and NGO, used by the
// per-user participation listing.
type DonationDetail struct {
	ID                  uint      `json:"id"`
	Amount              float64   `json:"amount"`
	DonatedAt           time.Time `json:"donated_at"`
	CampaignID          uint      `json:"campaign_id"`
	CampaignTitle       string    `json:"campaign_title"`
	CampaignDescription string    `json:"campaign_description"`
	NGOID               uint      `json:"ngo_id"`
	NGOName             string    `json:"ngo_name"`
}
