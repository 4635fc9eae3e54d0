package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

func TestHandleGetCatalog(t *testing.T) {
	svc := &MockEconomyService{}
	svc.On("GetShopCatalog").Return([]domain.ShopItem{{ID: "lucky_charm", Name: "Lucky Charm", Price: 400}})

	w := httptest.NewRecorder()
	NewShopHandler(svc).HandleGetCatalog(w, httptest.NewRequest(http.MethodGet, "/api/v1/shop", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lucky_charm"`)
}

func TestHandleBuyItem(t *testing.T) {
	ref := PlayerRef{Platform: "discord", PlatformID: "123"}
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockEconomyService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing Item",
			reqBody:        ItemRequest{PlayerRef: ref},
			setupMocks:     func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"item_id":"This field is required"`,
		},
		{
			name:    "Success",
			reqBody: ItemRequest{PlayerRef: ref, ItemID: "lucky_charm"},
			setupMocks: func(m *MockEconomyService) {
				m.On("ResolvePlayer", mock.Anything, "discord", "123").Return(testPlayer, nil)
				m.On("BuyItem", mock.Anything, "p-1", "lucky_charm").Return(&domain.PurchaseResult{
					ItemID: "lucky_charm", Quantity: 1, Cost: 400, Balance: 600,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"balance":600`,
		},
		{
			name:    "Unknown Item",
			reqBody: ItemRequest{PlayerRef: ref, ItemID: "golden_ticket"},
			setupMocks: func(m *MockEconomyService) {
				m.On("ResolvePlayer", mock.Anything, "discord", "123").Return(testPlayer, nil)
				m.On("BuyItem", mock.Anything, "p-1", "golden_ticket").Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFoundError,
		},
		{
			name:    "Unique Item Already Owned",
			reqBody: ItemRequest{PlayerRef: ref, ItemID: "trophy"},
			setupMocks: func(m *MockEconomyService) {
				m.On("ResolvePlayer", mock.Anything, "discord", "123").Return(testPlayer, nil)
				m.On("BuyItem", mock.Anything, "p-1", "trophy").Return(nil, domain.ErrItemAlreadyOwned)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgItemAlreadyOwnedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockEconomyService{}
			tt.setupMocks(svc)

			w := httptest.NewRecorder()
			NewShopHandler(svc).HandleBuyItem(w, httptest.NewRequest(http.MethodPost, "/api/v1/shop/buy", jsonBody(t, tt.reqBody)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleUseItem(t *testing.T) {
	ref := PlayerRef{Platform: "discord", PlatformID: "123"}

	t.Run("Effect Activated", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("ResolvePlayer", mock.Anything, "discord", "123").Return(testPlayer, nil)
		svc.On("UseItem", mock.Anything, "p-1", "lucky_charm").Return(&domain.Effect{
			PlayerID:     "p-1",
			Kind:         domain.EffectWinBoost,
			SourceItemID: "lucky_charm",
			ExpiresAt:    time.Now().Add(time.Hour),
			Magnitude:    2,
		}, nil)

		w := httptest.NewRecorder()
		NewShopHandler(svc).HandleUseItem(w, httptest.NewRequest(http.MethodPost, "/api/v1/shop/use", jsonBody(t, ItemRequest{PlayerRef: ref, ItemID: "lucky_charm"})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"magnitude":2`)
	})

	t.Run("Already Active", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("ResolvePlayer", mock.Anything, "discord", "123").Return(testPlayer, nil)
		svc.On("UseItem", mock.Anything, "p-1", "credit_line").Return(nil, domain.ErrAlreadyActive)

		w := httptest.NewRecorder()
		NewShopHandler(svc).HandleUseItem(w, httptest.NewRequest(http.MethodPost, "/api/v1/shop/use", jsonBody(t, ItemRequest{PlayerRef: ref, ItemID: "credit_line"})))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgAlreadyActiveError)
	})

	t.Run("Collectible Cannot Be Used", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("ResolvePlayer", mock.Anything, "discord", "123").Return(testPlayer, nil)
		svc.On("UseItem", mock.Anything, "p-1", "trophy").Return(nil, domain.ErrNotActivatable)

		w := httptest.NewRecorder()
		NewShopHandler(svc).HandleUseItem(w, httptest.NewRequest(http.MethodPost, "/api/v1/shop/use", jsonBody(t, ItemRequest{PlayerRef: ref, ItemID: "trophy"})))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
