package models

import "time"

type PortfolioItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:255" json:"image_url"`
	Category    string `gorm:"size:50" json:"category"`
	ClientName  string `gorm:"size:100" json:"client_name"`

	// YYYY-MM-DD, stored as sent by the dashboard form
	DateCompleted string `gorm:"size:20" json:"date_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
