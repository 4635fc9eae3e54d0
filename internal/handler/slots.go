package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/economy"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/slots"
)

// SlotsHandler handles slots-related HTTP requests
type SlotsHandler struct {
	service slots.Service
	players PlayerResolver
}

// NewSlotsHandler creates a new slots handler
func NewSlotsHandler(service slots.Service, players economy.Service) *SlotsHandler {
	return &SlotsHandler{service: service, players: players}
}

// SpinSlotsRequest represents a request to spin the slots.
// An empty machine selects the default; a missing bet is computed from the balance.
type SpinSlotsRequest struct {
	PlayerRef
	Machine string `json:"machine" validate:"omitempty,catalogkey"`
	Bet     *int64 `json:"bet" validate:"omitempty,gt=0"`
}

// AutoBetRule describes how a missing bet is chosen
type AutoBetRule struct {
	Fraction float64 `json:"fraction"`
	Min      int64   `json:"min"`
	Max      int64   `json:"max"`
}

// MachineSummary is one machine in the catalog listing
type MachineSummary struct {
	Key         string             `json:"key"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Type        domain.MachineType `json:"type"`
	Reel        []string           `json:"reel"`
}

// MachinesResponse lists the machines with the help needed to spin them
type MachinesResponse struct {
	DefaultMachine string           `json:"default_machine"`
	AutoBet        AutoBetRule      `json:"auto_bet"`
	Machines       []MachineSummary `json:"machines"`
}

// HandleGetMachines lists the machine catalog
// @Summary List slot machines
// @Tags slots
// @Produce json
// @Success 200 {object} MachinesResponse
// @Router /slots/machines [get]
func (h *SlotsHandler) HandleGetMachines(w http.ResponseWriter, r *http.Request) {
	defs := h.service.Machines()
	resp := MachinesResponse{
		DefaultMachine: h.service.DefaultMachine(),
		AutoBet: AutoBetRule{
			Fraction: slots.AutoBetFraction,
			Min:      slots.MinAutoBet,
			Max:      slots.MaxAutoBet,
		},
		Machines: make([]MachineSummary, 0, len(defs)),
	}
	for _, def := range defs {
		resp.Machines = append(resp.Machines, MachineSummary{
			Key:         def.Key,
			Title:       def.Title,
			Description: def.Description,
			Type:        def.Type,
			Reel:        def.Reel,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandleSpinSlots processes a slots spin request
// @Summary Spin a slot machine
// @Description Settles one spin plus any free spins it awards. A missing bet is chosen from the balance.
// @Tags slots
// @Accept json
// @Produce json
// @Param request body SpinSlotsRequest true "Spin details"
// @Success 200 {object} domain.SpinResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown machine or player"
// @Failure 409 {object} ErrorResponse "Insufficient funds"
// @Security ApiKeyAuth
// @Router /slots/spin [post]
func (h *SlotsHandler) HandleSpinSlots(w http.ResponseWriter, r *http.Request) {
	var req SpinSlotsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin slots"); err != nil {
		return
	}
	player, ok := resolveRef(r, w, h.players, req.PlayerRef, ErrMsgSpinFailed)
	if !ok {
		return
	}

	result, err := h.service.Spin(r.Context(), slots.SpinRequest{
		PlayerID:   player.ID,
		MachineKey: strings.ToLower(strings.TrimSpace(req.Machine)),
		Bet:        req.Bet,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgSpinFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Slots spin completed",
		"player_id", player.ID,
		"machine", result.MachineKey,
		"bet", result.Bet,
		"total_winnings", result.TotalWinnings)

	respondJSON(w, http.StatusOK, result)
}

// HandleGetJackpots returns the current progressive pools
func (h *SlotsHandler) HandleGetJackpots(w http.ResponseWriter, r *http.Request) {
	pools, err := h.service.Jackpots(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgJackpotsFailed, err)
		return
	}
	if pools == nil {
		pools = []domain.JackpotSnapshot{}
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: pools})
}
