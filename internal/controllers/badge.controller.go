package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"vitaverse/internal/chain"
	"vitaverse/internal/services"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	badges BadgeProvider
}

func NewBadgeController(badges BadgeProvider) *BadgeController {
	return &BadgeController{badges: badges}
}

// GetBadges godoc
// @Summary List badges
// @Description Badge catalogue. With an account, each badge carries the earned flag and progress.
// @Tags badges
// @Produce json
// @Param account query string false "Account address"
// @Success 200 {object} map[string]interface{} "Badges retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid address"
// @Router /badges [get]
func (bc *BadgeController) GetBadges(c *gin.Context) {
	var account *common.Address
	if raw := c.Query("account"); raw != "" {
		addr, err := services.ParseAddress(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid address",
				"error":   err.Error(),
			})
			return
		}
		account = &addr
	}

	badges, err := bc.badges.Catalogue(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Badges retrieved successfully",
		"data":    badges,
	})
}

// PurchaseBadge godoc
// @Summary Purchase a badge
// @Description Approve the YODA allowance when needed, then purchase the badge
// @Tags badges
// @Produce json
// @Security BearerAuth
// @Param id path int true "Badge ID"
// @Success 200 {object} map[string]interface{} "Badge purchased"
// @Failure 400 {object} map[string]interface{} "Invalid badge ID"
// @Failure 404 {object} map[string]interface{} "Badge not found"
// @Failure 409 {object} map[string]interface{} "Badge owned, sold out or inactive"
// @Failure 422 {object} map[string]interface{} "Insufficient balance"
// @Failure 502 {object} map[string]interface{} "Transaction failed"
// @Router /badges/{id}/purchase [post]
func (bc *BadgeController) PurchaseBadge(c *gin.Context) {
	account, ok := sessionAccount(c)
	if !ok {
		return
	}

	badgeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid badge ID",
			"error":   "ID must be a valid non-negative integer",
		})
		return
	}

	result, err := bc.badges.Purchase(c.Request.Context(), account, badgeID)
	if err != nil {
		var pe *services.PurchaseError
		if errors.As(err, &pe) {
			status, _ := errorStatus(pe.Err)
			message := chain.UserMessage(pe.Err)
			if pe.AllowanceGranted {
				message += ". The token allowance was approved and remains in place"
			}
			_ = c.Error(err)
			c.JSON(status, gin.H{
				"status":  "error",
				"message": message,
				"error":   err.Error(),
				"data": gin.H{
					"purchase_id":       pe.PurchaseID,
					"allowance_granted": pe.AllowanceGranted,
					"approve_tx_hash":   pe.ApproveTxHash,
				},
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Badge purchased",
		"data":    result,
	})
}
