package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/domain"
	"github.com/d3r-restaurant/menu-api/internal/menuapi/service"
	"github.com/d3r-restaurant/menu-api/pkg/apisdk"
	"github.com/d3r-restaurant/menu-api/pkg/httpx"
	"github.com/d3r-restaurant/menu-api/pkg/slogx"
)

// MenuHandler serves the /api/menu/ catalog routes. Reads are public; every
// mutation sits behind AuthnMiddleware in the router.
type MenuHandler struct {
	MenuService *service.MenuService
}

// HandleList serves GET /api/menu/.
func (h *MenuHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 0)

	items, err := h.MenuService.List(ctx, skip, limit)
	if err != nil {
		log.Error("listing menu items failed", "err", err)
		apisdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]apisdk.MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, toAPIMenuItem(item))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet serves GET /api/menu/{id}.
func (h *MenuHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		apisdk.ErrNotFound.WriteError(w)
		return
	}

	item, err := h.MenuService.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMenuItemNotFound):
			apisdk.ErrNotFound.WriteError(w)
		default:
			log.Error("fetching menu item failed", "id", id, "err", err)
			apisdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAPIMenuItem(item))
}

// HandleCreate serves POST /api/menu/.
func (h *MenuHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apisdk.CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" || req.Price < 0 {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}

	created, err := h.MenuService.Create(ctx, domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Popular:     req.Popular,
	})
	if err != nil {
		log.Error("creating menu item failed", "err", err)
		apisdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAPIMenuItem(created))
}

// HandleUpdate serves PUT /api/menu/{id}. Absent body fields keep their
// stored values.
func (h *MenuHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		apisdk.ErrNotFound.WriteError(w)
		return
	}

	var req apisdk.UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Price != nil && *req.Price < 0 {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}

	patch := domain.MenuItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Popular:     req.Popular,
	}

	updated, err := h.MenuService.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMenuItemNotFound):
			apisdk.ErrNotFound.WriteError(w)
		default:
			log.Error("updating menu item failed", "id", id, "err", err)
			apisdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAPIMenuItem(updated))
}

// HandleDelete serves DELETE /api/menu/{id}.
func (h *MenuHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		apisdk.ErrNotFound.WriteError(w)
		return
	}

	if err := h.MenuService.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, service.ErrMenuItemNotFound):
			apisdk.ErrNotFound.WriteError(w)
		default:
			log.Error("deleting menu item failed", "id", id, "err", err)
			apisdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func toAPIMenuItem(item domain.MenuItem) apisdk.MenuItem {
	return apisdk.MenuItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Image:       item.Image,
		Popular:     item.Popular,
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
	}
}
