package routes

import (
	"vitaverse/internal/controllers"
	"vitaverse/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(router *gin.Engine, dashboardController *controllers.DashboardController, jwtSecret string) {
	router.GET("/dashboard", middleware.AuthMiddleware(jwtSecret), dashboardController.GetDashboard)

	userRoutes := router.Group("/users/:address")
	{
		userRoutes.GET("/health", dashboardController.GetHealth)
		userRoutes.GET("/stats", dashboardController.GetStats)
		userRoutes.GET("/statistics", dashboardController.GetStatistics)
	}
}
