package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recommendations returns open tasks matching the caller's skills
func (h *Handler) Recommendations(c *gin.Context) {
	tasks, err := h.Core.Recommend(c.Request.Context(), callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// Apply submits an application for a task
func (h *Handler) Apply(c *gin.Context) {
	var req struct {
		TaskID string `json:"task_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.Core.Apply(c.Request.Context(), callerID(c), req.TaskID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

// CheckIn validates the caller's location against the event venue.
// Coordinates are pointers so that 0 survives required-field validation.
func (h *Handler) CheckIn(c *gin.Context) {
	var req struct {
		ApplicationID string   `json:"application_id" binding:"required"`
		Lat           *float64 `json:"lat" binding:"required,latitude"`
		Lng           *float64 `json:"lng" binding:"required,longitude"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.Core.CheckIn(c.Request.Context(), req.ApplicationID, callerID(c), *req.Lat, *req.Lng)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Checked in successfully! Good luck with your shift.",
		"check_in_time": app.CheckInTime,
	})
}

// CheckOut stamps the caller's departure time
func (h *Handler) CheckOut(c *gin.Context) {
	var req struct {
		ApplicationID string `json:"application_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.Core.CheckOut(c.Request.Context(), req.ApplicationID, callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Checked out, thank you!",
		"check_out_time": app.CheckOutTime,
	})
}

// Feedback records a rating and comment on the caller's own application
func (h *Handler) Feedback(c *gin.Context) {
	var req struct {
		ApplicationID string `json:"application_id" binding:"required"`
		Rating        int    `json:"rating" binding:"required,min=1,max=5"`
		Feedback      string `json:"feedback" binding:"max=2000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Core.SubmitFeedback(c.Request.Context(), req.ApplicationID, callerID(c), req.Rating, req.Feedback); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your feedback!"})
}

// Certificate returns certificate data for a completed application.
// Rendering (PDF or otherwise) is the client's concern.
func (h *Handler) Certificate(c *gin.Context) {
	cert, err := h.Core.CertificateEligible(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificate": cert})
}
