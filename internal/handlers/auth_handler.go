package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/handyman-saas/handyman-platform/internal/audit"
	"github.com/handyman-saas/handyman-platform/internal/httperr"
	"github.com/handyman-saas/handyman-platform/internal/models"
	"github.com/handyman-saas/handyman-platform/internal/session"
	"github.com/handyman-saas/handyman-platform/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	sessions session.Store
	codec    *session.CookieCodec
	audit    audit.Sink
	log      *slog.Logger
	ttl      time.Duration

	// swapped out in tests to avoid live DNS lookups
	emailCheck func(string) bool
}

func NewAuthHandler(
	db *gorm.DB,
	sessions session.Store,
	codec *session.CookieCodec,
	dispatcher audit.Sink,
	log *slog.Logger,
	ttl time.Duration,
) *AuthHandler {
	return &AuthHandler{
		db:         db,
		sessions:   sessions,
		codec:      codec,
		audit:      dispatcher,
		log:        log,
		ttl:        ttl,
		emailCheck: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	BusinessName string `json:"businessName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.emailCheck(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		h.log.Error("register lookup failed", "error", err)
		httperr.Internal(c, "registration_failed", "Database error")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "duplicate_entry", "Username or email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Server error")
		return
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		BusinessName: req.BusinessName,
		IsActive:     true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// concurrent registration can still hit the unique indexes
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "duplicate_entry", "Username or email already exists")
			return
		}
		h.log.Error("register insert failed", "error", err)
		httperr.Internal(c, "registration_failed", "Database error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Registration successful"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same answer as a wrong password: no account-existence leak
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
			return
		}
		h.log.Error("login lookup failed", "error", err)
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	sessionID, err := h.sessions.Create(c.Request.Context(), session.Data{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		h.log.Error("session create failed", "user_id", user.ID, "error", err)
		httperr.Internal(c, "session_failed", "Server error")
		return
	}

	cookie, err := h.codec.Encode(sessionID)
	if err != nil {
		h.log.Error("session cookie encode failed", "user_id", user.ID, "error", err)
		httperr.Internal(c, "session_failed", "Server error")
		return
	}

	c.SetCookie(session.CookieName, cookie, int(h.ttl.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"redirectUrl": "/dashboard",
	})
}

// Logout destroys the session and always lands on the landing page; a failed
// destroy is logged, never surfaced.
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
		if sessionID, err := h.codec.Decode(cookie); err == nil {
			if err := h.sessions.Destroy(c.Request.Context(), sessionID); err != nil {
				h.log.Error("session destroy failed", "error", err)
			}
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
