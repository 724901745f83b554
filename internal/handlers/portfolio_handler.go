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

type PortfolioHandler struct {
	db    *gorm.DB
	audit audit.Sink
}

func NewPortfolioHandler(db *gorm.DB, dispatcher audit.Sink) *PortfolioHandler {
	return &PortfolioHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type PortfolioItemRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	Category      string `json:"category"`
	ClientName    string `json:"clientName"`
	DateCompleted string `json:"dateCompleted"`
}

// --------- Handlers ---------

func (h *PortfolioHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	q := h.db.Scopes(ownedBy(userID))

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var items []models.PortfolioItem
	if err := q.
		Order("created_at DESC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_portfolio", "Database error")
		return
	}

	httpresp.List(c, items)
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req PortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	item := models.PortfolioItem{
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Category:      strings.ToLower(req.Category),
		ClientName:    req.ClientName,
		DateCompleted: req.DateCompleted,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_portfolio_item", "Database error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "portfolio_item_created",
		Entity:   "portfolio_item",
		EntityID: &item.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Portfolio item added successfully",
		"id":      item.ID,
	})
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "portfolio_item_not_found", "Portfolio item not found or unauthorized")
		return
	}

	var req PortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	res := h.db.Model(&models.PortfolioItem{}).
		Scopes(ownedBy(userID)).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"title":          req.Title,
			"description":    req.Description,
			"image_url":      req.ImageURL,
			"category":       strings.ToLower(req.Category),
			"client_name":    req.ClientName,
			"date_completed": req.DateCompleted,
		})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_portfolio_item", "Database error")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "portfolio_item_not_found", "Portfolio item not found or unauthorized")
		return
	}

	id := uint(itemID)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "portfolio_item_updated",
		Entity:   "portfolio_item",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item updated successfully"})
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "portfolio_item_not_found", "Portfolio item not found or unauthorized")
		return
	}

	res := h.db.
		Scopes(ownedBy(userID)).
		Where("id = ?", itemID).
		Delete(&models.PortfolioItem{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_portfolio_item", "Database error")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "portfolio_item_not_found", "Portfolio item not found or unauthorized")
		return
	}

	id := uint(itemID)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "portfolio_item_deleted",
		Entity:   "portfolio_item",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted successfully"})
}
