package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.CatalogService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.list").Msg("error listing items")
		http.Error(w, "error listing items", statusFromError(err))
		return
	}
	if items == nil {
		items = []models.CatalogItem{}
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var doc models.ItemDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Err(err).Str("func", "*Handler.add").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.CatalogService.Add(r.Context(), doc)
	if err != nil {
		log.Err(err).Str("func", "*Handler.add").Msg("error adding item")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "item id is required", http.StatusBadRequest)
		return
	}

	var doc models.ItemDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.CatalogService.UpdateByID(r.Context(), id, doc)
	if err != nil {
		log.Err(err).Str("func", "*Handler.update").Str("item_id", id).Msg("error updating item")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "item id is required", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.DeleteByID(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.delete").Str("item_id", id).Msg("error deleting item")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
