package controllers

import (
	"net/http"

	"vitaverse/internal/models"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	health HealthSubmitter
}

func NewHealthController(health HealthSubmitter) *HealthController {
	return &HealthController{health: health}
}

// SubmitHealth godoc
// @Summary Submit today's health data
// @Description Write health metrics to the contract. The response carries the refreshed dashboard once the transaction is mined.
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param health body models.HealthInput true "Health data in display units"
// @Success 200 {object} map[string]interface{} "Health data updated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 502 {object} map[string]interface{} "Transaction failed"
// @Router /health [post]
func (hc *HealthController) SubmitHealth(c *gin.Context) {
	account, ok := sessionAccount(c)
	if !ok {
		return
	}

	var input models.HealthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	result, err := hc.health.Submit(c.Request.Context(), account, input)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Health data updated"
	if result.Dashboard == nil {
		message = "Health data updated, refresh the dashboard to see it"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"data":    result,
	})
}
