package routes

import (
	"vitaverse/internal/controllers"
	"vitaverse/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterBadgeRoutes(router *gin.Engine, badgeController *controllers.BadgeController, jwtSecret string) {
	badgeRoutesPublic := router.Group("/badges")
	{
		badgeRoutesPublic.GET("", badgeController.GetBadges)
	}
	badgeRoutesPrivate := router.Group("/badges")
	badgeRoutesPrivate.Use(middleware.AuthMiddleware(jwtSecret))
	{
		badgeRoutesPrivate.POST("/:id/purchase", badgeController.PurchaseBadge)
	}
}
