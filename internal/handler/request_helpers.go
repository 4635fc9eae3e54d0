package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// PlayerRef identifies a player by chat identity
type PlayerRef struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"chatname"`
}

// PlayerResolver maps a chat identity to a registered player
type PlayerResolver interface {
	ResolvePlayer(ctx context.Context, platform, platformID string) (*domain.Player, error)
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written.
//
//	var req BuyItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter.
// If ok is false the response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter with a default
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseLimit reads ?limit=; zero means the service default
func parseLimit(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := GetOptionalQueryParam(r, "limit", "0")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}

// playerFromQuery resolves ?platform=&platform_id= to a player.
// If ok is false the response has already been written.
func playerFromQuery(r *http.Request, w http.ResponseWriter, players PlayerResolver, opName string) (*domain.Player, bool) {
	platform, ok := GetQueryParam(r, w, "platform")
	if !ok {
		return nil, false
	}
	platformID, ok := GetQueryParam(r, w, "platform_id")
	if !ok {
		return nil, false
	}
	return resolveRef(r, w, players, PlayerRef{Platform: platform, PlatformID: platformID}, opName)
}

func resolveRef(r *http.Request, w http.ResponseWriter, players PlayerResolver, ref PlayerRef, opName string) (*domain.Player, bool) {
	ref.Platform = strings.ToLower(ref.Platform)
	if !domain.ValidPlatforms[ref.Platform] {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlatformError)
		return nil, false
	}
	player, err := players.ResolvePlayer(r.Context(), ref.Platform, ref.PlatformID)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return nil, false
	}
	return player, true
}
