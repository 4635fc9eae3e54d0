package handler

import (
	"net/http"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/economy"
	"github.com/osse101/CasinoBot_Go/internal/leaderboard"
)

// LeaderboardHandler serves the balance and winners boards
type LeaderboardHandler struct {
	economy economy.Service
	winners leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(economySvc economy.Service, winners leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{economy: economySvc, winners: winners}
}

// HandleGetLeaderboard returns the top balances
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r, w)
	if !ok {
		return
	}

	entries, err := h.economy.Leaderboard(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgLeaderboardFailed, err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}

// HandleGetWinners returns the biggest cumulative winners
func (h *LeaderboardHandler) HandleGetWinners(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r, w)
	if !ok {
		return
	}

	entries, err := h.winners.TopWinners(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgLeaderboardFailed, err)
		return
	}
	if entries == nil {
		entries = []domain.WinnerEntry{}
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}
