package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboard DashboardProvider
}

func NewDashboardController(dashboard DashboardProvider) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GetDashboard godoc
// @Summary Get the dashboard
// @Description Health data, stats, badges, balance and statistics for the session account
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 503 {object} map[string]interface{} "Network unavailable"
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	account, ok := sessionAccount(c)
	if !ok {
		return
	}

	dash, err := dc.dashboard.Overview(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data":    dash,
	})
}

// GetHealth godoc
// @Summary Get health data
// @Description Latest on-chain health data for an address
// @Tags users
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} map[string]interface{} "Health data retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid address"
// @Router /users/{address}/health [get]
func (dc *DashboardController) GetHealth(c *gin.Context) {
	account, ok := pathAccount(c)
	if !ok {
		return
	}

	record, err := dc.dashboard.Health(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health data retrieved successfully",
		"data":    record,
	})
}

// GetStats godoc
// @Summary Get user stats
// @Description Streak, totals and badge count for an address
// @Tags users
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} map[string]interface{} "Stats retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid address"
// @Router /users/{address}/stats [get]
func (dc *DashboardController) GetStats(c *gin.Context) {
	account, ok := pathAccount(c)
	if !ok {
		return
	}

	stats, err := dc.dashboard.Stats(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stats retrieved successfully",
		"data":    stats,
	})
}

// GetStatistics godoc
// @Summary Get personal statistics
// @Description Derived statistics panel with tips and platform averages
// @Tags users
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} map[string]interface{} "Statistics retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid address"
// @Router /users/{address}/statistics [get]
func (dc *DashboardController) GetStatistics(c *gin.Context) {
	account, ok := pathAccount(c)
	if !ok {
		return
	}

	stats, err := dc.dashboard.Statistics(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Statistics retrieved successfully",
		"data":    stats,
	})
}
