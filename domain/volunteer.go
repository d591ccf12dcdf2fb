package domain

import "time"

const (
	VolunteerStatusPending  = "pending"
	VolunteerStatusApproved = "approved"
	VolunteerStatusRejected = "rejected"
)

// Volunteer is one user's application to one campaign. The unique index over
// (user_id, campaign_id) is what guarantees at most one application per pair,
// including under concurrent duplicate submissions.
type Volunteer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"column:user_id;not null;uniqueIndex:idx_volunteers_user_campaign" json:"user_id"`
	CampaignID uint      `gorm:"column:campaign_id;not null;uniqueIndex:idx_volunteers_user_campaign" json:"campaign_id"`
	Status     string    `gorm:"column:status;not null;default:pending" json:"status"`
	AppliedAt  time.Time `gorm:"column:applied_at;not null" json:"applied_at"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}

type (
	// VolunteerDetail is an application joined with campaign and NGO, as seen
	// by the applying user.
	VolunteerDetail struct {
		ID                  uint      `json:"id"`
		Status              string    `json:"status"`
		AppliedAt           time.Time `json:"applied_at"`
		CampaignID          uint      `json:"campaign_id"`
		CampaignTitle       string    `json:"campaign_title"`
		CampaignDescription string    `json:"campaign_description"`
		NGOID               uint      `json:"ngo_id"`
		NGOName             string    `json:"ngo_name"`
	}

	// VolunteerApplicant is an application joined with the applicant, as seen
	// by the NGO owner.
	VolunteerApplicant struct {
		ID            uint      `json:"id"`
		Status        string    `json:"status"`
		AppliedAt     time.Time `json:"applied_at"`
		CampaignID    uint      `json:"campaign_id"`
		CampaignTitle string    `json:"campaign_title"`
		UserName      string    `json:"user_name"`
		UserEmail     string    `json:"user_email"`
		UserMobile    string    `json:"user_mobile"`
	}

	// VolunteerNotification is the payload handed to the NGO owner when a
	// user applies. It is returned to the caller and mailed best-effort.
	VolunteerNotification struct {
		ApplicantName   string `json:"applicant_name"`
		ApplicantEmail  string `json:"applicant_email"`
		ApplicantMobile string `json:"applicant_mobile"`
		CampaignTitle   string `json:"campaign_title"`
		NGOName         string `json:"ngo_name"`
		OwnerName       string `json:"-"`
		OwnerEmail      string `json:"-"`
	}
)

type Participations struct {
	Donations  []DonationDetail  `json:"donations"`
	Volunteers []VolunteerDetail `json:"volunteers"`
}
