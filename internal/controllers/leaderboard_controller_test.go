package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitaverse/internal/controllers"
	"vitaverse/internal/mocks"
	"vitaverse/internal/models"
	"vitaverse/internal/repository"
	"vitaverse/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetLeaderboard(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockLeaderboardProvider)
		expectedStatus int
	}{
		{
			name:  "defaults",
			query: "",
			setupMock: func(m *mocks.MockLeaderboardProvider) {
				m.On("Leaderboard", mock.Anything, services.LeaderboardQuery{}).
					Return(&models.LeaderboardResponse{Filter: "all", Timeframe: "allTime"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "filter timeframe account refresh",
			query: "?filter=exercise&timeframe=weekly&account=" + alice.Hex() + "&refresh=true",
			setupMock: func(m *mocks.MockLeaderboardProvider) {
				m.On("Leaderboard", mock.Anything, services.LeaderboardQuery{
					Filter:    "exercise",
					Timeframe: "weekly",
					Account:   alice.Hex(),
					Refresh:   true,
				}).Return(&models.LeaderboardResponse{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "unknown filter",
			query: "?filter=sleep",
			setupMock: func(m *mocks.MockLeaderboardProvider) {
				m.On("Leaderboard", mock.Anything, services.LeaderboardQuery{Filter: "sleep"}).
					Return(nil, services.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad refresh flag",
			query:          "?refresh=maybe",
			setupMock:      func(m *mocks.MockLeaderboardProvider) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(mocks.MockLeaderboardProvider)
			tt.setupMock(provider)
			controller := controllers.NewLeaderboardController(provider)

			router := setupTestRouter()
			router.GET("/leaderboard", controller.GetLeaderboard)

			req, _ := http.NewRequest(http.MethodGet, "/leaderboard"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			provider.AssertExpectations(t)
		})
	}
}

func TestGetPlatformStats(t *testing.T) {
	provider := new(mocks.MockPlatformProvider)
	provider.On("Stats", mock.Anything).Return(&models.PlatformStats{TotalTransactions: 3}, nil).Once()
	provider.On("Stats", mock.Anything).Return(nil, errors.New("db down")).Once()
	controller := controllers.NewPlatformController(provider)

	router := setupTestRouter()
	router.GET("/platform/stats", controller.GetPlatformStats)

	req, _ := http.NewRequest(http.MethodGet, "/platform/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total_transactions"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetEvents(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockPlatformProvider)
		expectedStatus int
	}{
		{
			name:  "no filter",
			query: "",
			setupMock: func(m *mocks.MockPlatformProvider) {
				m.On("Events", repository.EventFilter{}).Return([]models.ContractEvent{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "address name limit",
			query: "?address=0x00000000000000000000000000000000000a11ce&name=BadgePurchased&limit=5",
			setupMock: func(m *mocks.MockPlatformProvider) {
				m.On("Events", repository.EventFilter{
					UserAddress: alice.Hex(),
					Name:        models.EventBadgePurchased,
					Limit:       5,
				}).Return([]models.ContractEvent{{Name: models.EventBadgePurchased}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown name",
			query:          "?name=Transfer",
			setupMock:      func(m *mocks.MockPlatformProvider) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad limit",
			query:          "?limit=-1",
			setupMock:      func(m *mocks.MockPlatformProvider) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad address",
			query:          "?address=alice",
			setupMock:      func(m *mocks.MockPlatformProvider) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(mocks.MockPlatformProvider)
			tt.setupMock(provider)
			controller := controllers.NewPlatformController(provider)

			router := setupTestRouter()
			router.GET("/events", controller.GetEvents)

			req, _ := http.NewRequest(http.MethodGet, "/events"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			provider.AssertExpectations(t)
		})
	}
}

type fixedStatus map[string]interface{}

func (s fixedStatus) GetStatus() map[string]interface{} { return s }

func TestLive(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		controller := controllers.NewLivenessController(
			fixedStatus{"running": true},
			fixedStatus{"source": "active"},
			nil,
			func(context.Context) error { return nil },
		)
		router := setupTestRouter()
		router.GET("/health/live", controller.Live)

		req, _ := http.NewRequest(http.MethodGet, "/health/live", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, map[string]interface{}{"running": true}, data["indexer"])
		assert.Equal(t, map[string]interface{}{"enabled": false}, data["cache"])
	})

	t.Run("database down", func(t *testing.T) {
		controller := controllers.NewLivenessController(nil, nil, nil, func(context.Context) error {
			return errors.New("connection refused")
		})
		router := setupTestRouter()
		router.GET("/health/live", controller.Live)

		req, _ := http.NewRequest(http.MethodGet, "/health/live", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
