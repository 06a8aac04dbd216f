package controllers

import (
	"context"
	"errors"
	"net/http"

	"vitaverse/internal/chain"
	"vitaverse/internal/models"
	"vitaverse/internal/repository"
	"vitaverse/internal/services"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

type DashboardProvider interface {
	Overview(ctx context.Context, account common.Address) (*models.Dashboard, error)
	Health(ctx context.Context, account common.Address) (*models.HealthRecord, error)
	Stats(ctx context.Context, account common.Address) (*models.UserStats, error)
	Statistics(ctx context.Context, account common.Address) (*models.Statistics, error)
}

type HealthSubmitter interface {
	Submit(ctx context.Context, account common.Address, in models.HealthInput) (*services.SubmitResult, error)
}

type BadgeProvider interface {
	Catalogue(ctx context.Context, account *common.Address) ([]models.Badge, error)
	Purchase(ctx context.Context, account common.Address, badgeID uint64) (*models.PurchaseResult, error)
}

type LeaderboardProvider interface {
	Leaderboard(ctx context.Context, q services.LeaderboardQuery) (*models.LeaderboardResponse, error)
}

type PlatformProvider interface {
	Stats(ctx context.Context) (*models.PlatformStats, error)
	Events(filter repository.EventFilter) ([]models.ContractEvent, error)
}

// errorStatus maps service and chain errors to an HTTP status and the
// message shown to the user.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidAddress):
		return http.StatusBadRequest, "Invalid address"
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid request data"
	case errors.Is(err, services.ErrBadgeNotFound):
		return http.StatusNotFound, "Badge not found"
	case errors.Is(err, services.ErrBadgeAlreadyEarned):
		return http.StatusConflict, "You already own this badge"
	case errors.Is(err, services.ErrBadgeSoldOut):
		return http.StatusConflict, "This badge is sold out"
	case errors.Is(err, services.ErrBadgeInactive):
		return http.StatusConflict, "This badge is not available for purchase"
	case errors.Is(err, services.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, "Insufficient YODA balance"
	case errors.Is(err, chain.ErrWalletUnavailable):
		return http.StatusServiceUnavailable, chain.UserMessage(err)
	case errors.Is(err, chain.ErrConnectionRejected):
		return http.StatusForbidden, chain.UserMessage(err)
	case errors.Is(err, chain.ErrTransient):
		return http.StatusServiceUnavailable, chain.UserMessage(err)
	case errors.Is(err, chain.ErrContractCall):
		return http.StatusBadGateway, chain.UserMessage(err)
	default:
		return http.StatusInternalServerError, "Unexpected error"
	}
}

func respondError(c *gin.Context, err error) {
	status, message := errorStatus(err)
	_ = c.Error(err)
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

func sessionAccount(c *gin.Context) (common.Address, bool) {
	v, exists := c.Get("account")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Wallet session not found",
		})
		return common.Address{}, false
	}
	account, ok := v.(common.Address)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Invalid wallet session",
		})
	}
	return account, ok
}

func pathAccount(c *gin.Context) (common.Address, bool) {
	account, err := services.ParseAddress(c.Param("address"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid address",
			"error":   err.Error(),
		})
		return common.Address{}, false
	}
	return account, true
}
