package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handyman-saas/handyman-platform/internal/audit"
	"github.com/handyman-saas/handyman-platform/internal/httperr"
	"github.com/handyman-saas/handyman-platform/internal/httpresp"
	"github.com/handyman-saas/handyman-platform/internal/middleware"
	"github.com/handyman-saas/handyman-platform/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit audit.Sink
}

func NewServiceHandler(db *gorm.DB, dispatcher audit.Sink) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type ServiceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Scopes(ownedBy(userID))

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("created_at DESC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Database error")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    strings.ToLower(req.Category),
		ImageURL:    req.ImageURL,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Database error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Service added successfully",
		"id":      service.ID,
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found or unauthorized")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	res := h.db.Model(&models.Service{}).
		Scopes(ownedBy(userID)).
		Where("id = ?", serviceID).
		Updates(map[string]interface{}{
			"title":       req.Title,
			"description": req.Description,
			"price":       req.Price,
			"duration":    req.Duration,
			"category":    strings.ToLower(req.Category),
			"image_url":   req.ImageURL,
		})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_service", "Database error")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found or unauthorized")
		return
	}

	id := uint(serviceID)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully"})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found or unauthorized")
		return
	}

	res := h.db.
		Scopes(ownedBy(userID)).
		Where("id = ?", serviceID).
		Delete(&models.Service{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Database error")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found or unauthorized")
		return
	}

	id := uint(serviceID)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
