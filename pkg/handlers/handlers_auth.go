package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteerhub/pkg/auth"
	"volunteerhub/pkg/models"
)

// Register creates a new account. Role defaults to volunteer; organizers
// self-identify at registration, matching the platform's trust model.
func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Name     string   `json:"name" binding:"required"`
		Email    string   `json:"email" binding:"required,email"`
		Password string   `json:"password" binding:"required,min=8"`
		Role     string   `json:"role" binding:"omitempty,oneof=volunteer organizer"`
		Skills   []string `json:"skills" binding:"omitempty,dive,skilltag"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Store.Volunteers.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleVolunteer
	}

	user := &models.Volunteer{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Skills:       req.Skills,
	}
	if err := h.Store.Volunteers.Create(c.Request.Context(), user); err != nil {
		h.respondError(c, err)
		return
	}

	token, err := auth.CreateToken(user.ID, user.Role)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	})
}

// Login exchanges credentials for a JWT
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.Volunteers.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if user == nil || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(user.ID, user.Role)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"role":  user.Role,
		"token": token,
	})
}
