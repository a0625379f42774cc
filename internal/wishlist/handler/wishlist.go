package handler

import (
	"net/http"

	"smarttour/internal/wishlist/service"
	httputil "smarttour/pkg/http"
	"smarttour/pkg/logger"
	"smarttour/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type WishlistHandler struct {
	service service.WishlistService
	log     *logger.Logger
}

func NewWishlistHandler(service service.WishlistService, log *logger.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		log:     log,
	}
}

func (h *WishlistHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/wishlists/:user_id", h.List)
	router.PUT("/api/v1/wishlists/:user_id", h.Seed)
	router.DELETE("/api/v1/wishlists/:user_id", h.Clear)
	router.GET("/api/v1/wishlists/:user_id/stats", h.Stats)
	router.POST("/api/v1/wishlists/:user_id/items", h.AddItem)
	router.DELETE("/api/v1/wishlists/:user_id/items/:item_id", h.RemoveItem)
	router.PATCH("/api/v1/wishlists/:user_id/items/:item_id/priority", h.UpdatePriority)
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	query := r.URL.Query()

	view, err := h.service.List(r.Context(), ps.ByName("user_id"), query.Get("priority"), query.Get("sort"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *WishlistHandler) Stats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	stats, err := h.service.Stats(r.Context(), ps.ByName("user_id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Stats", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, stats); err != nil {
		h.log.Error("failed to write success response", "handler", "Stats", "operation", "WriteSuccess", "error", err)
	}
}

// Seed replaces the wishlist with the request body, a JSON array of items.
// An empty body seeds the sample destinations.
func (h *WishlistHandler) Seed(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var items []model.WishlistItem
	present, err := httputil.DecodeOptionalBody(r, &items)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Seed", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	if present && items == nil {
		items = []model.WishlistItem{}
	}

	view, err := h.service.Seed(r.Context(), ps.ByName("user_id"), items)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Seed", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "Seed", "operation", "WriteSuccess", "error", err)
	}
}

func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Clear(r.Context(), ps.ByName("user_id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Clear", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var item model.WishlistItem
	if err := httputil.DecodeBody(r, &item); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AddItem", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	added, err := h.service.AddItem(r.Context(), ps.ByName("user_id"), &item)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "AddItem", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, added); err != nil {
		h.log.Error("failed to write created response", "handler", "AddItem", "operation", "WriteCreated", "error", err)
	}
}

func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.RemoveItem(r.Context(), ps.ByName("user_id"), ps.ByName("item_id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "RemoveItem", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *WishlistHandler) UpdatePriority(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.PriorityUpdate
	if err := httputil.DecodeBody(r, &update); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdatePriority", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	item, err := h.service.UpdatePriority(r.Context(), ps.ByName("user_id"), ps.ByName("item_id"), &update)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdatePriority", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, item); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdatePriority", "operation", "WriteSuccess", "error", err)
	}
}
