package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handyman-saas/handyman-platform/internal/httperr"
	"github.com/handyman-saas/handyman-platform/internal/models"
)

type fakeProfileRepo struct {
	users          []models.User
	services       map[uint][]models.Service
	portfolioItems map[uint][]models.PortfolioItem
	testimonials   map[uint][]models.Testimonial
}

func (r *fakeProfileRepo) GetActiveUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.IsActive {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) ListServices(_ context.Context, userID uint) ([]models.Service, error) {
	return r.services[userID], nil
}

func (r *fakeProfileRepo) ListPortfolioItems(_ context.Context, userID uint) ([]models.PortfolioItem, error) {
	return r.portfolioItems[userID], nil
}

func (r *fakeProfileRepo) ListTestimonials(_ context.Context, userID uint) ([]models.Testimonial, error) {
	return r.testimonials[userID], nil
}

func TestGetPublicProfile_Execute(t *testing.T) {
	repo := &fakeProfileRepo{
		users: []models.User{
			{ID: 1, Username: "alice", BusinessName: "Alice Handy", IsActive: true},
		},
		services: map[uint][]models.Service{
			1: {{ID: 10, UserID: 1, Title: "Plumbing"}},
		},
		portfolioItems: map[uint][]models.PortfolioItem{
			1: {{ID: 20, UserID: 1, Title: "Kitchen remodel"}},
		},
		testimonials: map[uint][]models.Testimonial{
			1: {{ID: 30, UserID: 1, ClientName: "Bob", Text: "Great work"}},
		},
	}
	uc := NewGetPublicProfile(repo)

	view, err := uc.Execute(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Equal(t, "Alice Handy", view.User.BusinessName)
	assert.Len(t, view.Services, 1)
	assert.Equal(t, "Plumbing", view.Services[0].Title)
	assert.Len(t, view.PortfolioItems, 1)
	assert.Len(t, view.Testimonials, 1)
}

// Registration stores usernames lowercased; a mixed-case URL segment must
// still find the profile.
func TestGetPublicProfile_Execute_MixedCaseUsername(t *testing.T) {
	repo := &fakeProfileRepo{
		users: []models.User{
			{ID: 1, Username: "alice", BusinessName: "Alice Handy", IsActive: true},
		},
	}
	uc := NewGetPublicProfile(repo)

	view, err := uc.Execute(context.Background(), "Alice")

	assert.NoError(t, err)
	assert.Equal(t, "Alice Handy", view.User.BusinessName)
}

func TestGetPublicProfile_Execute_UnknownUsername(t *testing.T) {
	uc := NewGetPublicProfile(&fakeProfileRepo{})

	_, err := uc.Execute(context.Background(), "nobody")

	assert.True(t, httperr.IsBusiness(err, "profile_not_found"))
}

// An inactive account answers exactly like an absent one.
func TestGetPublicProfile_Execute_InactiveUser(t *testing.T) {
	repo := &fakeProfileRepo{
		users: []models.User{
			{ID: 1, Username: "alice", IsActive: false},
		},
	}
	uc := NewGetPublicProfile(repo)

	_, err := uc.Execute(context.Background(), "alice")

	assert.True(t, httperr.IsBusiness(err, "profile_not_found"))
}

func TestGetPublicProfile_Execute_EmptySections(t *testing.T) {
	repo := &fakeProfileRepo{
		users: []models.User{
			{ID: 1, Username: "alice", IsActive: true},
		},
	}
	uc := NewGetPublicProfile(repo)

	view, err := uc.Execute(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Empty(t, view.Services)
	assert.Empty(t, view.PortfolioItems)
	assert.Empty(t, view.Testimonials)
}
