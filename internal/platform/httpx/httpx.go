// Package httpx reúne los helpers HTTP que antes estaban duplicados en cada
// módulo (writeJSON, parseo de paginación y de ids, mapeo de errores).
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"shelter-adoptions/internal/domain/entity"
	"shelter-adoptions/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError traduce la taxonomía de entity a status HTTP.
// Lo que no es de la taxonomía es un 500 y se loguea.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entity.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entity.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// DecodeJSON decodifica el body. Un body inválido es ErrInvalidInput.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json", entity.ErrInvalidInput)
	}
	return nil
}

// DecodeOptionalJSON es DecodeJSON pero acepta body vacío.
func DecodeOptionalJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: invalid json", entity.ErrInvalidInput)
}

// OptionalQueryInt64 devuelve 0 si el parámetro no vino.
func OptionalQueryInt64(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	return parseInt64(key, raw)
}

// Page lee offset (default 0) y limit (default 10, tope 100).
func Page(r *http.Request) (entity.Page, error) {
	offset, err := QueryInt(r, "offset", 0)
	if err != nil {
		return entity.Page{}, err
	}
	limit, err := QueryInt(r, "limit", entity.DefaultLimit)
	if err != nil {
		return entity.Page{}, err
	}
	return entity.NewPage(offset, limit)
}

func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", entity.ErrInvalidInput, key)
	}
	return n, nil
}

// RequiredQueryInt64 es para parámetros obligatorios (p.ej. adotante_id).
func RequiredQueryInt64(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", entity.ErrInvalidInput, key)
	}
	return parseInt64(key, raw)
}

// QueryBool acepta true/false y 1/0 (el front viejo manda status_adocao=0/1).
// El segundo retorno indica si el parámetro vino.
func QueryBool(r *http.Request, key string) (bool, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return false, false, nil
	}
	b, err := ParseBool(key, raw)
	return b, true, err
}

func ParseBool(key, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s must be true/false or 1/0", entity.ErrInvalidInput, key)
	}
}

// IDParam lee un id entero de la ruta (chi).
func IDParam(r *http.Request, name string) (int64, error) {
	return parseInt64(name, chi.URLParam(r, name))
}

func parseInt64(key, raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", entity.ErrInvalidInput, key)
	}
	return n, nil
}

// Ack es la respuesta corta de delete/cancel: {"ok": true, ...flags}.
func Ack(flags map[string]bool) map[string]bool {
	out := map[string]bool{"ok": true}
	for k, v := range flags {
		out[k] = v
	}
	return out
}
