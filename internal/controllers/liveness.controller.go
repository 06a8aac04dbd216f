package controllers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

type StatusReporter interface {
	GetStatus() map[string]interface{}
}

type CacheStatusReporter interface {
	GetStatus(ctx context.Context) (map[string]interface{}, error)
}

type LivenessController struct {
	indexer     StatusReporter
	leaderboard StatusReporter
	cache       CacheStatusReporter
	pingDB      func(ctx context.Context) error
	started     time.Time
}

// NewLivenessController takes optional components; nil ones are reported as
// disabled.
func NewLivenessController(indexer, leaderboard StatusReporter, cache CacheStatusReporter, pingDB func(ctx context.Context) error) *LivenessController {
	return &LivenessController{
		indexer:     indexer,
		leaderboard: leaderboard,
		cache:       cache,
		pingDB:      pingDB,
		started:     time.Now(),
	}
}

// Live godoc
// @Summary Liveness check
// @Description Reports database, cache, indexer and leaderboard status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} map[string]interface{} "Database unavailable"
// @Router /health/live [get]
func (lc *LivenessController) Live(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	healthy := true
	data := gin.H{
		"uptime":     time.Since(lc.started).Round(time.Second).String(),
		"goroutines": runtime.NumGoroutine(),
	}

	if lc.pingDB != nil {
		if err := lc.pingDB(ctx); err != nil {
			healthy = false
			data["database"] = gin.H{"healthy": false, "error": err.Error()}
		} else {
			data["database"] = gin.H{"healthy": true}
		}
	}

	if lc.cache != nil {
		status, err := lc.cache.GetStatus(ctx)
		if err != nil {
			data["cache"] = gin.H{"healthy": false, "error": err.Error()}
		} else {
			data["cache"] = status
		}
	} else {
		data["cache"] = gin.H{"enabled": false}
	}

	if lc.indexer != nil {
		data["indexer"] = lc.indexer.GetStatus()
	} else {
		data["indexer"] = gin.H{"enabled": false}
	}
	if lc.leaderboard != nil {
		data["leaderboard"] = lc.leaderboard.GetStatus()
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Service is degraded",
			"data":    data,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Service is healthy",
		"data":    data,
	})
}
