package handler

import (
	"encoding/json"
	"net/http"

	"github.com/promoplay/eggdraw/internal/api/apierr"
	"github.com/promoplay/eggdraw/internal/api/request"
	"github.com/promoplay/eggdraw/internal/api/response"
	"github.com/promoplay/eggdraw/internal/model"
	"github.com/promoplay/eggdraw/internal/services/allocator"
	"github.com/promoplay/eggdraw/internal/services/registry"
)

// AdminHandler handles the token-protected administrative endpoints
type AdminHandler struct {
	registry  *registry.Service
	allocator *allocator.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(registry *registry.Service, allocator *allocator.Service) *AdminHandler {
	return &AdminHandler{
		registry:  registry,
		allocator: allocator,
	}
}

// Preauthorize handles POST /api/v1/admin/players
func (h *AdminHandler) Preauthorize(w http.ResponseWriter, r *http.Request) {
	var req request.PreauthorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Identifier == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("vat_number is required"))
		return
	}

	err := h.registry.Preauthorize(r.Context(), model.Identifier(req.Identifier), req.Name, req.Email)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// ListPlayers handles GET /api/v1/admin/players
func (h *AdminHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.registry.ListActive(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.Player, len(players))
	for i, p := range players {
		out[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, response.PlayersResponse{Players: out})
}

// GetCatalog handles GET /api/v1/admin/catalog
func (h *AdminHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.CatalogFromModel(h.allocator.Catalog()))
}

// ReloadCatalog handles POST /api/v1/admin/catalog/reload
func (h *AdminHandler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.allocator.Reload(r.Context()); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CatalogFromModel(h.allocator.Catalog()))
}
