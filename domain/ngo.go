package domain

import "time"

type NGO struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Domain      string    `gorm:"column:domain" json:"domain"`
	Location    string    `gorm:"column:location" json:"location"`
	Contact     string    `gorm:"column:contact" json:"contact"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Objectives  string    `gorm:"column:objectives;type:text" json:"objectives"`
	Goals       string    `gorm:"column:goals;type:text" json:"goals"`
	OwnerID     uint      `gorm:"column:owner_id;not null;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (NGO) TableName() string {
	return "ngos"
}
