// Package server provides the HTTP catalog service for stockroom.
package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/thebtf/stockroom/internal/db/gorm"
)

// resource is the generic HTTP handler for one catalog resource. T is the
// stored model, C the create request, U the partial update request. The
// three resources instantiate this once each; no per-resource handler code
// exists beyond the request shapes in resources.go.
type resource[T, C, U any] struct {
	store    *gorm.CatalogStore[T]
	valid    *validator.Validate
	noun     string
	pageSize int
	maxPage  int

	// fromCreate builds a model from a validated create request.
	fromCreate func(*C) *T
	// updateColumns extracts the supplied fields of a partial update.
	updateColumns func(*U) map[string]interface{}
}

// mount attaches the five resource operations to a router.
func (h *resource[T, C, U]) mount(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// list returns records matching the query parameters.
func (h *resource[T, C, U]) list(w http.ResponseWriter, r *http.Request) {
	criteria := gorm.ParseListCriteria(r, h.pageSize, h.maxPage)

	records, err := h.store.List(r.Context(), criteria)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// get returns one record by id, or 404.
func (h *resource[T, C, U]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), h.noun)
	if !ok {
		return
	}

	record, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, h.noun+" not found")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// create validates the full request body and persists a new record.
// Duplicate field values are allowed; identity is solely the assigned id.
func (h *resource[T, C, U]) create(w http.ResponseWriter, r *http.Request) {
	var req C
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.valid.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeValidationError(w, verrs)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record := h.fromCreate(&req)
	if err := h.store.Create(r.Context(), record); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().
		Str("resource", h.noun).
		Str("request_id", GetRequestID(r.Context())).
		Msg("Record created")

	writeJSON(w, http.StatusOK, record)
}

// update applies a partial update and returns the refreshed record, or 404.
// Omitted fields retain their prior value; an empty object changes nothing.
func (h *resource[T, C, U]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), h.noun)
	if !ok {
		return
	}

	var req U
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	record, err := h.store.Update(r.Context(), id, h.updateColumns(&req))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, h.noun+" not found")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// delete removes a record, returning 204 on success and 404 for unknown ids.
func (h *resource[T, C, U]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, chi.URLParam(r, "id"), h.noun)
	if !ok {
		return
	}

	removed, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, h.noun+" not found")
		return
	}

	log.Info().
		Str("resource", h.noun).
		Int64("id", id).
		Str("request_id", GetRequestID(r.Context())).
		Msg("Record deleted")

	w.WriteHeader(http.StatusNoContent)
}
