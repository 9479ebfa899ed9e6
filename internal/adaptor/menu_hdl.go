package adaptor

import (
	"encoding/json"
	"net/http"

	"food-order/internal/dto/request"
	"food-order/internal/usecase"
	"food-order/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// List handles GET /api/v1/menu?available= (public)
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := utils.ParseBool(r.URL.Query().Get("available"))

	items, err := h.service.List(r.Context(), onlyAvailable)
	if err != nil {
		respondError(w, h.log, err, "list menu items")
		return
	}

	utils.ResponseSuccess(w, items)
}

// Create handles POST /api/v1/menu (admin only)
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create menu item")
		return
	}

	utils.ResponseCreated(w, item)
}

// Get handles GET /api/v1/menu/{id} (public)
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err, "get menu item")
		return
	}

	utils.ResponseSuccess(w, item)
}

// Update handles PUT /api/v1/menu/{id} (admin only)
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.MenuItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	item, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, h.log, err, "update menu item")
		return
	}

	utils.ResponseSuccess(w, item)
}

// Remove handles DELETE /api/v1/menu/{id} (admin only)
func (h *MenuHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		respondError(w, h.log, err, "delete menu item")
		return
	}

	utils.ResponseNoContent(w)
}

// parseID reads the {id} URL parameter. Non-UUID IDs cannot match any
// record, so they read as not found rather than bad input.
func (h *MenuHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Menu item not found")
		return uuid.Nil, false
	}
	return id, true
}
