package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"leo-furniture-api/internal/middleware"
	"leo-furniture-api/internal/service"
	"leo-furniture-api/pkg/apierror"
	"leo-furniture-api/pkg/response"
)

// ItemHandler handles item ledger HTTP requests.
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// itemID parses the {id} URL parameter.
func itemID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apierror.BadRequest("invalid item id")
	}
	return id, nil
}

// Create handles POST /api/v1/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	var in service.CreateItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	item, err := h.itemService.Create(r.Context(), claims.UserID, in)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, map[string]interface{}{"item": item})
}

// List handles GET /api/v1/items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	items, err := h.itemService.List(r.Context(), claims.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{"items": items})
}

// Update handles PATCH /api/v1/items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	id, err := itemID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var in service.UpdateItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	item, err := h.itemService.Update(r.Context(), claims.UserID, id, in)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{"item": item})
}

// Sell handles POST /api/v1/items/{id}/sell
func (h *ItemHandler) Sell(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	id, err := itemID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var in service.SellItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	item, err := h.itemService.Sell(r.Context(), claims.UserID, id, in)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{"item": item})
}

// Delete handles DELETE /api/v1/items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	id, err := itemID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.itemService.Delete(r.Context(), claims.UserID, id); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]bool{"ok": true})
}
