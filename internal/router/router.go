package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/database"
	"github.com/platewise/backend/internal/middleware"
)

// Deps carries everything the router wires together.
type Deps struct {
	AuthHandler     *api.AuthHandler
	RecipeHandler   *api.RecipeHandler
	MealPlanHandler *api.MealPlanHandler
	AuthService     middleware.TokenValidator
	RateLimiter     *middleware.RateLimiter
	HealthDB        *database.DB
}

// SetupRouter configures the application routes
func SetupRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		if deps.HealthDB != nil {
			if err := deps.HealthDB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "time": time.Now().UTC()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	v1 := router.Group("/api/v1")

	deps.AuthHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthService))
	if deps.RateLimiter != nil {
		protected.Use(deps.RateLimiter.RateLimitMiddleware())
	}

	deps.RecipeHandler.RegisterRoutes(protected)
	deps.MealPlanHandler.RegisterRoutes(protected)

	return router
}
