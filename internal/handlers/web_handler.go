package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type WebHandler struct{}

func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

func (h *WebHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Handyman SaaS Platform",
	})
}

func (h *WebHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Title": "Register - Handyman SaaS Platform",
	})
}

func (h *WebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Login - Handyman SaaS Platform",
	})
}
