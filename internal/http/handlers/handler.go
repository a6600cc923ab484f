package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/logger"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB    *pgxpool.Pool
	Auth  *service.AuthService
	Tasks *service.TaskService
	Stats *service.StatsService
}

func NewHandler(db *pgxpool.Pool, tokens *service.TokenManager, hasher *service.PasswordHasher) *Handler {
	taskRepo := repository.NewTaskRepository(db)
	return &Handler{
		DB:    db,
		Auth:  service.NewAuthService(repository.NewUserRepository(db), hasher, tokens),
		Tasks: service.NewTaskService(taskRepo),
		Stats: service.NewStatsService(taskRepo),
	}
}

// currentUser returns the verified user snapshot placed in the context by the
// auth middleware.
func currentUser(c *gin.Context) (*domain.User, bool) {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// fail translates an error kind into its HTTP status and writes the
// {error, message} envelope. Unknown errors surface as a generic 500.
func fail(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": true, "message": err.Error()})
}
