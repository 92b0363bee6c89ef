package api

import (
	"net/http"
	"time"

	"alcyxob/runplan-app/internal/catalog"
	"alcyxob/runplan-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler into the router. nowFn supplies "today" to
// the date-dependent progress views; pass nil for the wall clock.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	cat *catalog.Catalog,
	authService service.AuthService,
	planService service.PlanService,
	progressService service.ProgressService,
	nowFn func() time.Time,
) {
	authHandler := NewAuthHandler(authService)
	planHandler := NewPlanHandler(cat, planService)
	progressHandler := NewProgressHandler(progressService, nowFn)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		// --- Catalog Routes (read-only) ---
		plansGroup := protected.Group("/plans")
		{
			plansGroup.GET("", planHandler.ListPlans)
			plansGroup.GET("/:id", planHandler.GetPlan)
		}

		// --- Active Plan Routes ---
		planGroup := protected.Group("/plan")
		{
			planGroup.GET("", planHandler.GetActivePlan)
			planGroup.POST("", planHandler.StartPlan)
			planGroup.DELETE("", planHandler.CancelPlan)
			planGroup.POST("/workouts/toggle", planHandler.ToggleWorkout)
			planGroup.GET("/workouts/:week/:day", planHandler.GetCompletion)
		}

		// --- Progress Routes ---
		progressGroup := protected.Group("/progress")
		{
			progressGroup.GET("", progressHandler.GetOverview)
			progressGroup.POST("/export", progressHandler.ExportSnapshot)
		}
		protected.GET("/calendar", progressHandler.GetCalendar)
	}
}
