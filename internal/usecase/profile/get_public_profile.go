package profile

import (
	"context"
	"strings"

	domain "github.com/handyman-saas/handyman-platform/internal/domain/profile"
	"github.com/handyman-saas/handyman-platform/internal/httperr"
)

// ======================================================
// USE CASE
// ======================================================

type GetPublicProfile struct {
	repo domain.Repository
}

func NewGetPublicProfile(repo domain.Repository) *GetPublicProfile {
	return &GetPublicProfile{repo: repo}
}

// Execute performs three independent reads after the user lookup. They are
// sequential and unguarded: a mutation landing between them can produce a
// momentarily inconsistent page, which is acceptable for a public listing.
func (uc *GetPublicProfile) Execute(
	ctx context.Context,
	username string,
) (*domain.PublicProfile, error) {

	// usernames are stored lowercased at registration, so the URL segment
	// has to be folded the same way
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := uc.repo.GetActiveUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.ErrBusiness("profile_not_found")
	}

	services, err := uc.repo.ListServices(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	items, err := uc.repo.ListPortfolioItems(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	testimonials, err := uc.repo.ListTestimonials(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.PublicProfile{
		User:           *user,
		Services:       services,
		PortfolioItems: items,
		Testimonials:   testimonials,
	}, nil
}
