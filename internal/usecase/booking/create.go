package booking

import (
	"context"
	"time"

	"github.com/handyman-saas/handyman-platform/internal/audit"
	domain "github.com/handyman-saas/handyman-platform/internal/domain/booking"
	"github.com/handyman-saas/handyman-platform/internal/httperr"
	"github.com/handyman-saas/handyman-platform/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceID uint

	Date    string // YYYY-MM-DD
	Time    string // HH:mm
	Message string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateBooking(
	repo domain.Repository,
	audit audit.Sink,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute records the booking request unconditionally: the service id is not
// checked against the target user's catalog and there is no availability or
// duplicate-submission guard.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	b := &models.Booking{
		UserID:        in.UserID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		ServiceID:     in.ServiceID,
		BookingDate:   in.Date,
		BookingTime:   in.Time,
		Message:       in.Message,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &b.UserID,
		Action:   "booking_received",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
