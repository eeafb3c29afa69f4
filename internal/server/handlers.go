// Package server provides the HTTP catalog service for stockroom.
package server

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// errorResponse is the uniform JSON error body.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeJSON writes a JSON response with proper error handling.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeValidationError maps validator failures to a 422 with per-field
// detail, keyed by JSON field name.
func writeValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = validationMessage(fe)
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}

// validationMessage renders one field error in plain words.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

// jsonFieldName resolves a struct field to its JSON name for error reporting.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// parseIDParam parses a record id from a URL path segment.
// Writes a 400 response and returns false when the id is not a positive
// integer.
func parseIDParam(w http.ResponseWriter, raw, noun string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+noun+" id")
		return 0, false
	}
	return id, true
}

// handleHealth reports service status, uptime, and database health.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbHealth := s.store.HealthCheck(r.Context())

	status := http.StatusOK
	if dbHealth.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]interface{}{
		"status":   dbHealth.Status,
		"version":  s.version,
		"uptime":   time.Since(s.startTime).String(),
		"database": dbHealth,
	})
}
