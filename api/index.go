package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"volunteerhub/pkg/database"
	"volunteerhub/pkg/handlers"
	"volunteerhub/pkg/models"
	"volunteerhub/pkg/scheduler"
	"volunteerhub/pkg/store"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	db := database.InitDB()
	st := store.New(db)
	core := scheduler.NewService(st.Volunteers, st.Tasks, st.Applications, st.Events, logger)
	h := &handlers.Handler{Core: core, Store: st, Logger: logger}

	handlers.RegisterValidators()

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(h.RequestLogger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "VolunteerHub Coordination API (Vercel)",
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
}

// Handler is the serverless entrypoint
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
