package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"volunteerhub/pkg/models"
)

// CreateEvent registers a new event owned by the caller
func (h *Handler) CreateEvent(c *gin.Context) {
	var req struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		Lat         *float64 `json:"lat" binding:"required,latitude"`
		Lng         *float64 `json:"lng" binding:"required,longitude"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.Core.CreateEvent(c.Request.Context(), callerID(c), &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// CreateTask adds a shift under an event
func (h *Handler) CreateTask(c *gin.Context) {
	var req struct {
		Title          string    `json:"title" binding:"required"`
		RequiredSkills []string  `json:"required_skills" binding:"omitempty,dive,skilltag"`
		StartTime      time.Time `json:"start_time" binding:"required"`
		EndTime        time.Time `json:"end_time" binding:"required"`
		MaxVolunteers  int       `json:"max_volunteers" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.Core.CreateTask(c.Request.Context(), &models.Task{
		EventID:        c.Param("id"),
		Title:          req.Title,
		RequiredSkills: req.RequiredSkills,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		MaxVolunteers:  req.MaxVolunteers,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// ApproveApplication moves a pending application to approved
func (h *Handler) ApproveApplication(c *gin.Context) {
	app, err := h.Core.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// RejectApplication moves a pending application to rejected
func (h *Handler) RejectApplication(c *gin.Context) {
	app, err := h.Core.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// VerifyCompletion finalizes an application and credits volunteer hours
func (h *Handler) VerifyCompletion(c *gin.Context) {
	var req struct {
		ApplicationID string `json:"application_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vol, err := h.Core.VerifyCompletion(c.Request.Context(), req.ApplicationID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Task verified, hours updated",
		"volunteer": vol,
	})
}

// Stats returns aggregate counts for the organizer dashboard
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.Core.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
