package http

import (
	"net/http"

	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)

	h := handlers.NewHandler(db, tokens, hasher)
	healthHandler := handlers.NewHealthHandler(db, version)

	authRL := middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)
	protected := middleware.Auth(tokens)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "hello"})
	})

	// Health checks (no rate limiting)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Auth
	r.POST("/create-account", authRL, h.CreateAccount)
	r.POST("/login", authRL, h.Login)

	// Tasks, owner-scoped behind the bearer token
	r.POST("/add-note", protected, h.AddNote)
	r.PUT("/edit-note/:id", protected, h.EditNote)
	r.GET("/get-all-notes", protected, h.GetAllNotes)
	r.DELETE("/delete-note/:id", protected, h.DeleteNote)

	// Dashboard statistics
	r.GET("/stats", protected, h.UserStats)
}
