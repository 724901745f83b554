package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handyman-saas/handyman-platform/internal/httperr"
	ucProfile "github.com/handyman-saas/handyman-platform/internal/usecase/profile"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	getProfile *ucProfile.GetPublicProfile
	log        *slog.Logger
}

func NewPublicHandler(getProfile *ucProfile.GetPublicProfile, log *slog.Logger) *PublicHandler {
	return &PublicHandler{
		getProfile: getProfile,
		log:        log,
	}
}

////////////////////////////////////////////////////////
// PUBLIC PORTFOLIO PAGE (HTML)
////////////////////////////////////////////////////////

func (h *PublicHandler) ShowPortfolioPage(c *gin.Context) {
	username := c.Param("username")

	view, err := h.getProfile.Execute(c.Request.Context(), username)
	if err != nil {
		if httperr.IsBusiness(err, "profile_not_found") {
			c.HTML(http.StatusNotFound, "404.html", gin.H{
				"Title": "Page Not Found",
			})
			return
		}

		h.log.Error("public profile load failed", "username", username, "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.HTML(http.StatusOK, "portfolio.html", gin.H{
		"User":           view.User,
		"Services":       view.Services,
		"PortfolioItems": view.PortfolioItems,
		"Testimonials":   view.Testimonials,
		"Title":          view.User.BusinessName + " - Professional Handyman Services",
	})
}

////////////////////////////////////////////////////////
// PUBLIC PROFILE (JSON)
////////////////////////////////////////////////////////

func (h *PublicHandler) GetPublicProfile(c *gin.Context) {
	username := c.Param("username")

	view, err := h.getProfile.Execute(c.Request.Context(), username)
	if err != nil {
		if httperr.IsBusiness(err, "profile_not_found") {
			httperr.NotFound(c, "profile_not_found", "Profile not found.")
			return
		}

		h.log.Error("public profile load failed", "username", username, "error", err)
		httperr.Internal(c, "failed_to_load_profile", "Server error")
		return
	}

	c.JSON(http.StatusOK, view)
}
