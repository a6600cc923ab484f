package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) UserStats(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "user not found"})
		return
	}

	stats, err := h.Stats.ForOwner(c.Request.Context(), owner)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":     false,
		"userStats": stats,
		"message":   "task statistics retrieved successfully",
	})
}
