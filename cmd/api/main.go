package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handyman-saas/handyman-platform/internal/config"
	dbpkg "github.com/handyman-saas/handyman-platform/internal/db"
	"github.com/handyman-saas/handyman-platform/internal/logger"
	"github.com/handyman-saas/handyman-platform/internal/middleware"
	"github.com/handyman-saas/handyman-platform/internal/routes"
	"github.com/handyman-saas/handyman-platform/internal/session"
)

func main() {

	cfg := config.Load()
	appLogger := logger.New(cfg.Env)
	db := dbpkg.NewDB(cfg)

	sessions, err := session.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("failed to connect session store: %v", err)
	}
	defer sessions.Close()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, appLogger, sessions)

	appLogger.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
