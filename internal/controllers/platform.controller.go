package controllers

import (
	"net/http"
	"strconv"

	"vitaverse/internal/models"
	"vitaverse/internal/repository"
	"vitaverse/internal/services"

	"github.com/gin-gonic/gin"
)

type PlatformController struct {
	platform PlatformProvider
}

func NewPlatformController(platform PlatformProvider) *PlatformController {
	return &PlatformController{platform: platform}
}

// GetPlatformStats godoc
// @Summary Platform statistics
// @Description Transaction totals, recent badge purchases, purchases per badge and platform averages
// @Tags platform
// @Produce json
// @Success 200 {object} map[string]interface{} "Platform stats retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve platform stats"
// @Router /platform/stats [get]
func (pc *PlatformController) GetPlatformStats(c *gin.Context) {
	stats, err := pc.platform.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve platform stats",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Platform stats retrieved successfully",
		"data":    stats,
	})
}

// GetEvents godoc
// @Summary List indexed contract events
// @Description Indexed HealthDataUpdated, BadgeEarned and BadgePurchased events, newest first
// @Tags platform
// @Produce json
// @Param address query string false "Filter by account address"
// @Param name query string false "Filter by event name"
// @Param limit query int false "Maximum number of events" default(50)
// @Success 200 {object} map[string]interface{} "Events retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Router /events [get]
func (pc *PlatformController) GetEvents(c *gin.Context) {
	var filter repository.EventFilter

	if raw := c.Query("address"); raw != "" {
		addr, err := services.ParseAddress(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid address",
				"error":   err.Error(),
			})
			return
		}
		filter.UserAddress = addr.Hex()
	}

	switch name := c.Query("name"); name {
	case "", models.EventHealthDataUpdated, models.EventBadgeEarned, models.EventBadgePurchased:
		filter.Name = name
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid event name",
			"error":   "name must be HealthDataUpdated, BadgeEarned or BadgePurchased",
		})
		return
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit",
				"error":   "limit must be a positive integer",
			})
			return
		}
		filter.Limit = limit
	}

	events, err := pc.platform.Events(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve events",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Events retrieved successfully",
		"data":    events,
	})
}
