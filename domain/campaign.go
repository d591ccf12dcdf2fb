package domain

import "time"

type Campaign struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	NGOID           uint      `gorm:"column:ngo_id;not null;index" json:"ngo_id"`
	Title           string    `gorm:"column:title;not null" json:"title"`
	Description     string    `gorm:"column:description;type:text" json:"description"`
	GoalAmount      float64   `gorm:"column:goal_amount;not null" json:"goal_amount"`
	CollectedAmount float64   `gorm:"column:collected_amount;not null;default:0" json:"collected_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// CampaignWithNGO is the public listing row, a campaign joined with the
// owning NGO's name.
type CampaignWithNGO struct {
	Campaign
	NGOName string `json:"ngo_name"`
}
