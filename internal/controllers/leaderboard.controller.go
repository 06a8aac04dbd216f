package controllers

import (
	"net/http"
	"strconv"

	"vitaverse/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	leaderboard LeaderboardProvider
}

func NewLeaderboardController(leaderboard LeaderboardProvider) *LeaderboardController {
	return &LeaderboardController{leaderboard: leaderboard}
}

// GetLeaderboard godoc
// @Summary Get the leaderboard
// @Description Rank users by health score, exercise, streak or badges. Changing filter or timeframe reuses the held snapshot; refresh=true forces a new fetch.
// @Tags leaderboard
// @Produce json
// @Param filter query string false "all, exercise, streak or badges" default(all)
// @Param timeframe query string false "weekly (top 10), monthly (top 15) or allTime" default(allTime)
// @Param account query string false "Account to highlight"
// @Param refresh query bool false "Force a fresh snapshot"
// @Success 200 {object} map[string]interface{} "Leaderboard retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid filter or timeframe"
// @Failure 503 {object} map[string]interface{} "Network unavailable"
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	q := services.LeaderboardQuery{
		Filter:    c.Query("filter"),
		Timeframe: c.Query("timeframe"),
		Account:   c.Query("account"),
	}
	if raw := c.Query("refresh"); raw != "" {
		refresh, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "refresh must be true or false",
			})
			return
		}
		q.Refresh = refresh
	}

	resp, err := lc.leaderboard.Leaderboard(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Leaderboard retrieved successfully",
		"data":    resp,
	})
}
