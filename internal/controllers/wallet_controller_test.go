package controllers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vitaverse/internal/chain"
	"vitaverse/internal/controllers"
	"vitaverse/internal/mocks"
	"vitaverse/internal/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockWallet)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "default account",
			body: "",
			setupMock: func(m *mocks.MockWallet) {
				m.On("Connect", "").Return(alice, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Wallet connected",
		},
		{
			name: "requested account",
			body: `{"address":"` + alice.Hex() + `"}`,
			setupMock: func(m *mocks.MockWallet) {
				m.On("Connect", alice.Hex()).Return(alice, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Wallet connected",
		},
		{
			name: "no wallet",
			body: "",
			setupMock: func(m *mocks.MockWallet) {
				m.On("Connect", "").Return(common.Address{}, chain.ErrWalletUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedMsg:    "No wallet is available. Configure a wallet account to continue",
		},
		{
			name: "rejected",
			body: `{"address":"0x0000000000000000000000000000000000000bad"}`,
			setupMock: func(m *mocks.MockWallet) {
				m.On("Connect", "0x0000000000000000000000000000000000000bad").Return(common.Address{}, chain.ErrConnectionRejected)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Wallet connection was rejected",
		},
		{
			name:           "invalid JSON",
			body:           "invalid json",
			setupMock:      func(m *mocks.MockWallet) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet := new(mocks.MockWallet)
			tt.setupMock(wallet)
			controller := controllers.NewWalletController(wallet, "secret", time.Hour)

			router := setupTestRouter()
			router.POST("/wallet/connect", controller.Connect)

			req, _ := http.NewRequest(http.MethodPost, "/wallet/connect", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.expectedMsg, body["message"])

			if tt.expectedStatus == http.StatusOK {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, alice.Hex(), data["address"])
				account, err := utils.ParseSessionToken("secret", data["token"].(string))
				require.NoError(t, err)
				assert.Equal(t, alice, account)
			}
			wallet.AssertExpectations(t)
		})
	}
}

func TestAccounts(t *testing.T) {
	wallet := new(mocks.MockWallet)
	wallet.On("Accounts").Return([]common.Address{alice})
	controller := controllers.NewWalletController(wallet, "secret", time.Hour)

	router := setupTestRouter()
	router.GET("/wallet/accounts", controller.Accounts)

	req, _ := http.NewRequest(http.MethodGet, "/wallet/accounts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{alice.Hex()}, decodeBody(t, w)["data"])
}
