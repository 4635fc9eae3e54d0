package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/economy"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// PlayerHandler serves registration, balances and chip transfers
type PlayerHandler struct {
	service economy.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(service economy.Service) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// RegisterRequest registers a chat identity
type RegisterRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"chatname"`
	Username   string `json:"username" validate:"chatname"`
}

// RegisterResponse reports the player and whether they were just created
type RegisterResponse struct {
	Message string         `json:"message"`
	Created bool           `json:"created"`
	Player  *domain.Player `json:"player"`
}

// HandleRegister creates a player on first contact
// @Summary Register a chat identity
// @Description Creates the player with the starting balance on first contact; repeats return the existing player
// @Tags player
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Chat identity"
// @Success 201 {object} RegisterResponse
// @Success 200 {object} RegisterResponse "Already registered"
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /player/register [post]
func (h *PlayerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
		return
	}

	player, created, err := h.service.Register(r.Context(), strings.ToLower(req.Platform), req.PlatformID, req.Username)
	if err != nil {
		respondServiceError(w, r, ErrMsgRegisterFailed, err)
		return
	}

	status, msg := http.StatusOK, MsgPlayerAlreadyExisted
	if created {
		status, msg = http.StatusCreated, MsgPlayerRegistered
		logger.FromContext(r.Context()).Info("Player registered", "player_id", player.ID, "platform", player.Platform)
	}

	respondJSON(w, status, RegisterResponse{Message: msg, Created: created, Player: player})
}

// HandleGetBalance returns the balance and active effects
func (h *PlayerHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	player, ok := playerFromQuery(r, w, h.service, ErrMsgBalanceFailed)
	if !ok {
		return
	}

	view, err := h.service.Balance(r.Context(), player.ID)
	if err != nil {
		respondServiceError(w, r, ErrMsgBalanceFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// HandleClaimDaily grants the daily bonus
// @Summary Claim the daily bonus
// @Tags player
// @Accept json
// @Produce json
// @Param request body PlayerRef true "Player"
// @Success 200 {object} domain.DailyClaim
// @Failure 404 {object} ErrorResponse "Player not registered"
// @Failure 429 {object} ErrorResponse "Bonus already claimed"
// @Security ApiKeyAuth
// @Router /player/daily [post]
func (h *PlayerHandler) HandleClaimDaily(w http.ResponseWriter, r *http.Request) {
	var req PlayerRef
	if err := DecodeAndValidateRequest(r, w, &req, "Claim daily"); err != nil {
		return
	}
	player, ok := resolveRef(r, w, h.service, req, ErrMsgDailyFailed)
	if !ok {
		return
	}

	claim, err := h.service.ClaimDaily(r.Context(), player.ID)
	if err != nil {
		respondServiceError(w, r, ErrMsgDailyFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, claim)
}

// TransferRequest sends chips to another player by username
type TransferRequest struct {
	PlayerRef
	RecipientUsername string `json:"recipient_username" validate:"chatname"`
	Amount            int64  `json:"amount" validate:"gt=0"`
}

// HandleTransfer moves chips between players
// @Summary Send chips to another player
// @Tags player
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Recipient and amount"
// @Success 200 {object} domain.TransferResult
// @Failure 400 {object} ErrorResponse "Invalid amount or self transfer"
// @Failure 404 {object} ErrorResponse "Recipient not found"
// @Failure 409 {object} ErrorResponse "Insufficient funds"
// @Security ApiKeyAuth
// @Router /player/transfer [post]
func (h *PlayerHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Transfer"); err != nil {
		return
	}
	sender, ok := resolveRef(r, w, h.service, req.PlayerRef, ErrMsgTransferFailed)
	if !ok {
		return
	}

	result, err := h.service.Transfer(r.Context(), sender.ID, strings.TrimPrefix(req.RecipientUsername, "@"), req.Amount)
	if err != nil {
		respondServiceError(w, r, ErrMsgTransferFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleGetInventory lists owned items
func (h *PlayerHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	player, ok := playerFromQuery(r, w, h.service, ErrMsgInventoryFailed)
	if !ok {
		return
	}

	items, err := h.service.GetInventory(r.Context(), player.ID)
	if err != nil {
		respondServiceError(w, r, ErrMsgInventoryFailed, err)
		return
	}
	if items == nil {
		items = []domain.InventoryView{}
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: items})
}

// HandleGetAnalytics returns spin statistics while an analytics pass is active
func (h *PlayerHandler) HandleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	player, ok := playerFromQuery(r, w, h.service, ErrMsgAnalyticsFailed)
	if !ok {
		return
	}

	stats, err := h.service.Analytics(r.Context(), player.ID)
	if err != nil {
		respondServiceError(w, r, ErrMsgAnalyticsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
