package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"volunteerhub/pkg/auth"
	"volunteerhub/pkg/scheduler"
	"volunteerhub/pkg/store"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	Core   *scheduler.Service
	Store  *store.Store
	Logger *zap.Logger
}

// AuthMiddleware verifies the JWT token and stores the caller's identity
// on the request context. Core operations receive the identity explicitly;
// nothing downstream reads ambient auth state.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole rejects callers whose token does not carry the given role
func (h *Handler) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger logs each request with method, path, status, and duration
func (h *Handler) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		switch {
		case c.Writer.Status() >= 500:
			h.Logger.Error("request", fields...)
		case c.Writer.Status() >= 400:
			h.Logger.Warn("request", fields...)
		default:
			h.Logger.Info("request", fields...)
		}
	}
}

// callerID returns the authenticated user's ID set by AuthMiddleware
func callerID(c *gin.Context) string {
	return c.GetString("userID")
}

// respondError translates core errors into HTTP responses
func (h *Handler) respondError(c *gin.Context, err error) {
	var oor *scheduler.OutOfRangeError
	if errors.As(err, &oor) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           oor.Error(),
			"distance_meters": math.Round(oor.DistanceMeters),
		})
		return
	}

	switch {
	case errors.Is(err, scheduler.ErrVolunteerNotFound),
		errors.Is(err, scheduler.ErrTaskNotFound),
		errors.Is(err, scheduler.ErrApplicationNotFound),
		errors.Is(err, scheduler.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, scheduler.ErrTaskFull),
		errors.Is(err, scheduler.ErrAlreadyApplied),
		errors.Is(err, scheduler.ErrScheduleConflict),
		errors.Is(err, scheduler.ErrNotPending),
		errors.Is(err, scheduler.ErrNotCompleted),
		errors.Is(err, scheduler.ErrInvalidTimeWindow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, scheduler.ErrNotAuthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("internal error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
