package routes

import (
	"vitaverse/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterWalletRoutes(router *gin.Engine, walletController *controllers.WalletController) {
	walletRoutes := router.Group("/wallet")
	{
		walletRoutes.POST("/connect", walletController.Connect)
		walletRoutes.GET("/accounts", walletController.Accounts)
	}
}
