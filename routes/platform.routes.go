package routes

import (
	"vitaverse/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPlatformRoutes(router *gin.Engine, platformController *controllers.PlatformController) {
	router.GET("/events", platformController.GetEvents)
	router.GET("/platform/stats", platformController.GetPlatformStats)
}
