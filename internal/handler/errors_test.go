package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		// CASE 1: Best Case - sentinel errors
		{"not found", domain.ErrUserNotFound, http.StatusNotFound, ErrMsgUserNotFoundError},
		{"analytics locked", domain.ErrAnalyticsLocked, http.StatusForbidden, ErrMsgAnalyticsLockedError},
		{"invalid bet", domain.ErrInvalidBet, http.StatusBadRequest, ErrMsgInvalidBetError},

		// CASE 3: Edge - wrapped errors still match
		{"wrapped funds", fmt.Errorf("spin: %w", domain.ErrInsufficientFunds), http.StatusBadRequest, ErrMsgNotEnoughChipsError},
		{"cooldown keeps detail", fmt.Errorf("%w: next claim in 1h0m0s", domain.ErrOnCooldown), http.StatusTooManyRequests, "action on cooldown: next claim in 1h0m0s"},

		// CASE 4: Invalid Case - internal details are hidden
		{"database", fmt.Errorf("%w: connection reset", domain.ErrDatabaseError), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
