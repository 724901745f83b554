package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/handyman-saas/handyman-platform/internal/httperr"
	"github.com/handyman-saas/handyman-platform/internal/imaging"
	"github.com/handyman-saas/handyman-platform/internal/middleware"
	"github.com/handyman-saas/handyman-platform/internal/storage"
)

const (
	maxUploadBytes = 10 << 20
	maxImageEdge   = 1600
	webpQuality    = 85
)

type UploadHandler struct {
	uploader storage.Uploader
	log      *slog.Logger
}

func NewUploadHandler(uploader storage.Uploader, log *slog.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, log: log}
}

// Create accepts a multipart image, normalizes it to webp and stores it.
// The returned URL is what the dashboard puts into imageUrl fields.
func (h *UploadHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}

	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the 10MB limit.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Server error")
		return
	}
	defer f.Close()

	data, err := imaging.ToWebP(f, maxImageEdge, webpQuality)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The file could not be read as an image.")
		return
	}

	key := fmt.Sprintf("uploads/%d/%s.webp", userID, uuid.NewString())

	url, err := h.uploader.Upload(c.Request.Context(), key, data, imaging.ContentType)
	if err != nil {
		h.log.Error("image upload failed", "user_id", userID, "key", key, "error", err)
		httperr.Internal(c, "upload_failed", "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
