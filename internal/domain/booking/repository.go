package booking

import (
	"context"

	"github.com/handyman-saas/handyman-platform/internal/models"
)

type Repository interface {
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)
}
