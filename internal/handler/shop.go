package handler

import (
	"net/http"

	"github.com/osse101/CasinoBot_Go/internal/economy"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// ShopHandler handles item purchases and activation
type ShopHandler struct {
	service economy.Service
}

// NewShopHandler creates a new shop handler
func NewShopHandler(service economy.Service) *ShopHandler {
	return &ShopHandler{service: service}
}

// ItemRequest names one shop item for a player
type ItemRequest struct {
	PlayerRef
	ItemID string `json:"item_id" validate:"required,catalogkey"`
}

// HandleGetCatalog lists the items for sale
func (h *ShopHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.service.GetShopCatalog()})
}

// HandleBuyItem buys one unit of an item
// @Summary Buy a shop item
// @Tags shop
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item to buy"
// @Success 200 {object} domain.PurchaseResult
// @Failure 404 {object} ErrorResponse "Unknown item"
// @Failure 409 {object} ErrorResponse "Insufficient funds or already owned"
// @Security ApiKeyAuth
// @Router /shop/buy [post]
func (h *ShopHandler) HandleBuyItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}
	player, ok := resolveRef(r, w, h.service, req.PlayerRef, ErrMsgBuyItemFailed)
	if !ok {
		return
	}

	result, err := h.service.BuyItem(r.Context(), player.ID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgBuyItemFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Item purchased", "player_id", player.ID, "item", req.ItemID)
	respondJSON(w, http.StatusOK, result)
}

// HandleUseItem activates an owned item
func (h *ShopHandler) HandleUseItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
		return
	}
	player, ok := resolveRef(r, w, h.service, req.PlayerRef, ErrMsgUseItemFailed)
	if !ok {
		return
	}

	effect, err := h.service.UseItem(r.Context(), player.ID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgUseItemFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, effect)
}
