package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"volunteerhub/pkg/database"
	"volunteerhub/pkg/handlers"
	"volunteerhub/pkg/models"
	"volunteerhub/pkg/scheduler"
	"volunteerhub/pkg/store"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := database.InitDB()
	st := store.New(db)
	core := scheduler.NewService(st.Volunteers, st.Tasks, st.Applications, st.Events, logger)
	h := &handlers.Handler{Core: core, Store: st, Logger: logger}

	handlers.RegisterValidators()

	r := gin.New()
	r.Use(h.RequestLogger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "VolunteerHub Coordination API",
			"version": "1.0.0",
		})
	})

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		vol := api.Group("/volunteer")
		{
			vol.GET("/recommendations", h.Recommendations)
			vol.POST("/apply", h.Apply)
			vol.POST("/checkin", h.CheckIn)
			vol.POST("/checkout", h.CheckOut)
			vol.POST("/feedback", h.Feedback)
			vol.GET("/certificate/:id", h.Certificate)
		}

		org := api.Group("/org")
		org.Use(h.RequireRole(models.RoleOrganizer))
		{
			org.POST("/events", h.CreateEvent)
			org.POST("/events/:id/tasks", h.CreateTask)
			org.POST("/applications/:id/approve", h.ApproveApplication)
			org.POST("/applications/:id/reject", h.RejectApplication)
			org.POST("/verify", h.VerifyCompletion)
			org.GET("/stats", h.Stats)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("could not run server", zap.Error(err))
	}
}
