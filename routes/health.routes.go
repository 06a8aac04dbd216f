package routes

import (
	"vitaverse/internal/controllers"
	"vitaverse/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController, livenessController *controllers.LivenessController, jwtSecret string) {
	healthRoutesPublic := router.Group("/health")
	{
		healthRoutesPublic.GET("/live", livenessController.Live)
	}
	healthRoutesPrivate := router.Group("/health")
	healthRoutesPrivate.Use(middleware.AuthMiddleware(jwtSecret))
	{
		healthRoutesPrivate.POST("", healthController.SubmitHealth)
	}
}
