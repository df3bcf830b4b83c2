// Package http implements the JSON REST surface over the service layer.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mpancino/myAssetPlace-sub004/internal/auth"
	"github.com/mpancino/myAssetPlace-sub004/internal/middleware"
	"github.com/mpancino/myAssetPlace-sub004/internal/service"
	"github.com/mpancino/myAssetPlace-sub004/internal/storage"
)

// userIDFrom returns the authenticated user ID, or empty pre-auth.
func userIDFrom(r *http.Request) string {
	return middleware.GetUserID(r.Context())
}

// errorResponse is the JSON body for every error status.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps service and storage sentinels to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, auth.ErrWeakPassword):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInsufficientData):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailExists):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		slog.Error("Request error", "error", err)
		// Do not leak internals to clients.
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeBody parses a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
