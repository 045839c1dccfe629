// Package httpx reúne los helpers de handlers que antes se duplicaban por módulo
// (writeJSON, mapeo de errores, parseo de ids de path).
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// DateLayout es el formato de fecha de los DTOs (YYYY-MM-DD).
const DateLayout = "2006-01-02"

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError traduce errores de dominio a status HTTP.
// Los errores no clasificados se loguean y salen como 500 genérico.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, errs.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"err":    err,
			"method": r.Method,
			"path":   r.URL.Path,
		})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// PathID lee un id numérico del path.
func PathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Invalid("%s must be a positive integer", name)
	}
	return id, nil
}

// DecodeJSON decodifica el body; cualquier fallo es ErrInvalidInput.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.Invalid("invalid json")
	}
	return nil
}

// ParseDate parsea YYYY-MM-DD; field se usa en el mensaje de error.
func ParseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errs.Invalid("%s must be YYYY-MM-DD", field)
	}
	return t, nil
}

// FormatDate es el inverso de ParseDate. nil => "".
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
