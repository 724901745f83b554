package models

import "time"

// Read-only in this surface: rows are seeded externally, there is no write
// endpoint for testimonials.
type Testimonial struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	ClientName string `gorm:"size:100" json:"client_name"`
	Text       string `gorm:"type:text" json:"text"`
	Rating     int    `json:"rating"`

	DatePosted time.Time `json:"date_posted"`
}
