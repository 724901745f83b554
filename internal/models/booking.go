package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// The professional the booking is addressed to.
	UserID uint `gorm:"index;not null" json:"user_id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	ServiceID uint `json:"service_id"`

	BookingDate string `gorm:"size:20" json:"booking_date"` // YYYY-MM-DD
	BookingTime string `gorm:"size:10" json:"booking_time"` // HH:mm
	Message     string `gorm:"type:text" json:"message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
