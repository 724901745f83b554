package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handyman-saas/handyman-platform/internal/middleware"
	"github.com/handyman-saas/handyman-platform/internal/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

func (h *DashboardHandler) Show(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// session points at a user that no longer exists
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	var items []models.PortfolioItem
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":           user,
		"Services":       services,
		"PortfolioItems": items,
		"Title":          user.BusinessName + " - Dashboard",
	})
}
