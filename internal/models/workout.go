package models

import "time"

type Workout struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID string `gorm:"size:36;index;not null" json:"userId"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Duration string `gorm:"size:50;not null" json:"duration"`
	Status   string `gorm:"size:50" json:"status"`

	IsActive  bool      `gorm:"default:true" json:"isActive"`
	DateAdded time.Time `json:"dateAdded"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
