package handler

import (
	"encoding/json"
	"net/http"

	"github.com/promoplay/eggdraw/internal/api/apierr"
	"github.com/promoplay/eggdraw/internal/api/request"
	"github.com/promoplay/eggdraw/internal/api/response"
	"github.com/promoplay/eggdraw/internal/model"
	"github.com/promoplay/eggdraw/internal/services/game"
)

// GameHandler handles the player-facing game endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Authorize handles POST /api/v1/game/authorize
func (h *GameHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	var req request.AuthorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Identifier == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("vat_number is required"))
		return
	}

	player, err := h.gameController.Authorize(r.Context(), model.Identifier(req.Identifier))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthorizeResponse{PlayerName: player.Name})
}

// Play handles POST /api/v1/game/play
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Identifier == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("vat_number is required"))
		return
	}

	prizeName, err := h.gameController.Play(r.Context(), model.Identifier(req.Identifier), req.Name, req.Email)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayResponse{PrizeName: prizeName})
}
