package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/handyman-saas/handyman-platform/internal/domain/profile"
	"github.com/handyman-saas/handyman-platform/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) GetActiveUserByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *ProfileGormRepository) ListServices(
	ctx context.Context,
	userID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

func (r *ProfileGormRepository) ListPortfolioItems(
	ctx context.Context,
	userID uint,
) ([]models.PortfolioItem, error) {

	var items []models.PortfolioItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ProfileGormRepository) ListTestimonials(
	ctx context.Context,
	userID uint,
) ([]models.Testimonial, error) {

	var testimonials []models.Testimonial
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_posted DESC").
		Find(&testimonials).Error; err != nil {
		return nil, err
	}

	return testimonials, nil
}

// Compile-time check
var _ domain.Repository = (*ProfileGormRepository)(nil)
