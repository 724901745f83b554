package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/handyman-saas/handyman-platform/internal/domain/booking"
	"github.com/handyman-saas/handyman-platform/internal/httperr"
	"github.com/handyman-saas/handyman-platform/internal/httpresp"
	"github.com/handyman-saas/handyman-platform/internal/middleware"
	ucBooking "github.com/handyman-saas/handyman-platform/internal/usecase/booking"
)

type BookingHandler struct {
	create *ucBooking.CreateBooking
	repo   domain.Repository
	log    *slog.Logger
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	repo domain.Repository,
	log *slog.Logger,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		repo:   repo,
		log:    log,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	UserID        uint   `json:"userId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	ServiceID     uint   `json:"serviceId"`
	BookingDate   string `json:"bookingDate" binding:"required"`
	BookingTime   string `json:"bookingTime" binding:"required"`
	Message       string `json:"message"`
}

// --------- Handlers ---------

// Create is the unauthenticated intake endpoint for booking requests.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	booking, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			UserID:        req.UserID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			ServiceID:     req.ServiceID,
			Date:          req.BookingDate,
			Time:          req.BookingTime,
			Message:       req.Message,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date_or_time", "Booking date or time is invalid.")
			return
		}

		h.log.Error("booking insert failed", "error", err)
		httperr.Internal(c, "failed_to_create_booking", "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking submitted successfully",
		"id":      booking.ID,
	})
}

// List returns the authenticated professional's incoming booking requests,
// newest first.
func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.repo.ListBookingsForUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("booking list failed", "user_id", userID, "error", err)
		httperr.Internal(c, "failed_to_list_bookings", "Database error")
		return
	}

	httpresp.List(c, bookings)
}
