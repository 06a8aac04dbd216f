package controllers

import (
	"net/http"
	"time"

	"vitaverse/internal/chain"
	"vitaverse/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type WalletController struct {
	wallet     chain.Wallet
	secret     string
	sessionTTL time.Duration
}

func NewWalletController(wallet chain.Wallet, secret string, sessionTTL time.Duration) *WalletController {
	return &WalletController{wallet: wallet, secret: secret, sessionTTL: sessionTTL}
}

type ConnectRequest struct {
	Address string `json:"address" example:"0x00000000000000000000000000000000000A11CE"`
}

type ConnectResponse struct {
	Address   string    `json:"address"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Connect godoc
// @Summary Connect a wallet account
// @Description Connect one of the configured wallet accounts and issue a session token. Without an address the first account is used.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body ConnectRequest false "Requested account"
// @Success 200 {object} map[string]interface{} "Wallet connected"
// @Failure 403 {object} map[string]interface{} "Connection rejected"
// @Failure 503 {object} map[string]interface{} "No wallet available"
// @Router /wallet/connect [post]
func (wc *WalletController) Connect(c *gin.Context) {
	var req ConnectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
	}

	account, err := wc.wallet.Connect(req.Address)
	if err != nil {
		logrus.WithError(err).WithField("requested", req.Address).Warn("Wallet connection failed")
		respondError(c, err)
		return
	}

	token, expiresAt, err := utils.GenerateSessionToken(wc.secret, account, wc.sessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Wallet connected",
		"data": ConnectResponse{
			Address:   account.Hex(),
			Token:     token,
			ExpiresAt: expiresAt,
		},
	})
}

// Accounts godoc
// @Summary List wallet accounts
// @Description List the accounts the configured wallet can sign for
// @Tags wallet
// @Produce json
// @Success 200 {object} map[string]interface{} "Accounts retrieved successfully"
// @Router /wallet/accounts [get]
func (wc *WalletController) Accounts(c *gin.Context) {
	accounts := wc.wallet.Accounts()
	out := make([]string, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Hex())
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Accounts retrieved successfully",
		"data":    out,
	})
}
