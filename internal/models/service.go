package models

import "time"

type Service struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `gorm:"size:50" json:"duration"`
	Category    string  `gorm:"size:50" json:"category"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
