package profile

import (
	"context"

	"github.com/handyman-saas/handyman-platform/internal/models"
)

// PublicProfile is the read-only aggregate rendered on /portfolio/:username.
type PublicProfile struct {
	User           models.User            `json:"user"`
	Services       []models.Service       `json:"services"`
	PortfolioItems []models.PortfolioItem `json:"portfolio_items"`
	Testimonials   []models.Testimonial   `json:"testimonials"`
}

type Repository interface {
	// GetActiveUserByUsername returns (nil, nil) when no active user holds
	// the username. Inactive users are indistinguishable from absent ones.
	GetActiveUserByUsername(
		ctx context.Context,
		username string,
	) (*models.User, error)

	ListServices(
		ctx context.Context,
		userID uint,
	) ([]models.Service, error)

	ListPortfolioItems(
		ctx context.Context,
		userID uint,
	) ([]models.PortfolioItem, error)

	ListTestimonials(
		ctx context.Context,
		userID uint,
	) ([]models.Testimonial, error)
}
