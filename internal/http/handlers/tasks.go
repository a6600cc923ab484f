package handlers

import (
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type AddTaskRequest struct {
	Title     string    `json:"title"`
	Priority  int       `json:"priority"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// EditTaskRequest uses pointers so an omitted field is distinguishable from
// one explicitly set to its zero value.
type EditTaskRequest struct {
	Title     *string    `json:"title"`
	Priority  *int       `json:"priority"`
	Status    *string    `json:"status"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

func (h *Handler) AddNote(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "user not found"})
		return
	}

	var req AddTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "bad request"})
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), owner, service.CreateTaskInput{
		Title:     req.Title,
		Priority:  req.Priority,
		Status:    req.Status,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"note":    task,
		"message": "task added successfully",
	})
}

func (h *Handler) EditNote(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "user not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid task id"})
		return
	}

	var req EditTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "bad request"})
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), owner, id, domain.TaskPatch{
		Title:     req.Title,
		Priority:  req.Priority,
		Status:    req.Status,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"note":    task,
		"message": "task updated successfully",
	})
}

func (h *Handler) GetAllNotes(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "user not found"})
		return
	}

	tasks, err := h.Tasks.List(c.Request.Context(), owner)
	if err != nil {
		fail(c, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"notes":   tasks,
		"message": "all tasks retrieved successfully",
	})
}

func (h *Handler) DeleteNote(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": "user not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid task id"})
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), owner, id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"message": "task deleted successfully",
	})
}
