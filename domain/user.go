package domain

import (
	"time"
)

const (
	RoleUser = "user"
	RoleNGO  = "ngo"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Email       string    `gorm:"column:email;unique;not null" json:"email"`
	Password    string    `gorm:"column:password;not null" json:"-"`
	Role        string    `gorm:"column:role;default:user" json:"role"`
	Age         int       `gorm:"column:age" json:"age,omitempty"`
	Mobile      string    `gorm:"column:mobile" json:"mobile,omitempty"`
	Area        string    `gorm:"column:area" json:"area,omitempty"`
	ProfileIcon string    `gorm:"column:profile_icon" json:"profile_icon"`
	CreatedAt   time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Profile is a User plus the number of distinct campaigns the user has
// touched through either a donation or a volunteer application.
type Profile struct {
	User
	CampaignParticipationCount int64 `json:"campaign_participation_count"`
}
