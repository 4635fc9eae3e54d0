package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/slots"
)

func TestHandleSpinSlots(t *testing.T) {
	bet := int64(25)
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockSlotsService, *MockEconomyService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "{",
			setupMocks:     func(ms *MockSlotsService, me *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Negative Bet Rejected",
			reqBody: map[string]interface{}{
				"platform": "discord", "platform_id": "123", "bet": -5,
			},
			setupMocks:     func(ms *MockSlotsService, me *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"bet"`,
		},
		{
			name:    "Auto Bet On Default Machine",
			reqBody: SpinSlotsRequest{PlayerRef: PlayerRef{Platform: "discord", PlatformID: "123"}},
			setupMocks: func(ms *MockSlotsService, me *MockEconomyService) {
				me.On("ResolvePlayer", mock.Anything, "discord", "123").Return(testPlayer, nil)
				ms.On("Spin", mock.Anything, slots.SpinRequest{PlayerID: "p-1"}).Return(&domain.SpinResult{
					PlayerID: "p-1", MachineKey: "fruit", Bet: 50, Balance: 950,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"machine_key":"fruit"`,
		},
		{
			name: "Explicit Machine And Bet",
			reqBody: SpinSlotsRequest{
				PlayerRef: PlayerRef{Platform: "discord", PlatformID: "123"},
				Machine:   " Pirate ",
				Bet:       &bet,
			},
			setupMocks: func(ms *MockSlotsService, me *MockEconomyService) {
				me.On("ResolvePlayer", mock.Anything, "discord", "123").Return(testPlayer, nil)
				ms.On("Spin", mock.Anything, mock.MatchedBy(func(req slots.SpinRequest) bool {
					return req.MachineKey == "pirate" && req.Bet != nil && *req.Bet == 25
				})).Return(&domain.SpinResult{PlayerID: "p-1", MachineKey: "pirate", Bet: 25}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"bet":25`,
		},
		{
			name: "Unknown Machine",
			reqBody: SpinSlotsRequest{
				PlayerRef: PlayerRef{Platform: "discord", PlatformID: "123"},
				Machine:   "vegas",
			},
			setupMocks: func(ms *MockSlotsService, me *MockEconomyService) {
				me.On("ResolvePlayer", mock.Anything, "discord", "123").Return(testPlayer, nil)
				ms.On("Spin", mock.Anything, mock.Anything).Return(nil, domain.ErrUnknownMachine)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgUnknownMachineError,
		},
		{
			name: "Insufficient Funds",
			reqBody: SpinSlotsRequest{
				PlayerRef: PlayerRef{Platform: "discord", PlatformID: "123"},
				Bet:       &bet,
			},
			setupMocks: func(ms *MockSlotsService, me *MockEconomyService) {
				me.On("ResolvePlayer", mock.Anything, "discord", "123").Return(testPlayer, nil)
				ms.On("Spin", mock.Anything, mock.Anything).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughChipsError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := &MockSlotsService{}
			me := &MockEconomyService{}
			tt.setupMocks(ms, me)

			w := httptest.NewRecorder()
			NewSlotsHandler(ms, me).HandleSpinSlots(w, httptest.NewRequest(http.MethodPost, "/api/v1/slots/spin", jsonBody(t, tt.reqBody)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			ms.AssertExpectations(t)
			me.AssertExpectations(t)
		})
	}
}

func TestHandleGetMachines(t *testing.T) {
	ms := &MockSlotsService{}
	ms.On("DefaultMachine").Return("fruit")
	ms.On("Machines").Return([]domain.MachineDefinition{
		{Key: "fruit", Title: "Fruit Frenzy", Type: domain.MachineTypeClassic, Reel: []string{"🍒", "🍋"}},
		{Key: "pirate", Title: "Pirate's Cove", Type: domain.MachineTypeScatterBonus, Reel: []string{"🗺️"}},
	})

	w := httptest.NewRecorder()
	NewSlotsHandler(ms, &MockEconomyService{}).HandleGetMachines(w, httptest.NewRequest(http.MethodGet, "/api/v1/slots/machines", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"default_machine":"fruit"`)
	assert.Contains(t, body, `"fraction":0.05`)
	assert.Contains(t, body, `"key":"pirate"`)
}

func TestHandleGetJackpots(t *testing.T) {
	t.Run("Pools Listed", func(t *testing.T) {
		ms := &MockSlotsService{}
		ms.On("Jackpots", mock.Anything).Return([]domain.JackpotSnapshot{{MachineKey: "pharaoh", Title: "Pharaoh's Fortune", Amount: 1500}}, nil)

		w := httptest.NewRecorder()
		NewSlotsHandler(ms, &MockEconomyService{}).HandleGetJackpots(w, httptest.NewRequest(http.MethodGet, "/api/v1/jackpots", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"amount":1500`)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		ms := &MockSlotsService{}
		ms.On("Jackpots", mock.Anything).Return(nil, domain.ErrDatabaseError)

		w := httptest.NewRecorder()
		NewSlotsHandler(ms, &MockEconomyService{}).HandleGetJackpots(w, httptest.NewRequest(http.MethodGet, "/api/v1/jackpots", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
