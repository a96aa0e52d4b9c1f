// Package response writes the JSON envelopes shared by every HTTP handler.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chris/dashboard-wallpaper/pkg/api"
	"github.com/chris/dashboard-wallpaper/pkg/capture"
	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
)

const (
	CodeInvalidInput = "invalid_input"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeInternal     = "internal_error"
)

// WriteJSON encodes body with the given status.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response", "error", err, "status", status)
	}
}

// WriteError writes the {success:false} error envelope.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	WriteJSON(w, r, status, api.ErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

// BadRequest reports a validation failure.
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	logger.FromContext(r.Context()).Warn("validation failed", "error", message)
	WriteError(w, r, http.StatusBadRequest, CodeInvalidInput, message)
}

// HandleError maps storage and capture errors onto HTTP statuses.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var paramErr *api.InvalidParamFormatError
	switch {
	case errors.As(err, &paramErr),
		errors.Is(err, capture.ErrEmptyText),
		errors.Is(err, capture.ErrInvalidDate),
		errors.Is(err, capture.ErrUnsupportedURL):
		BadRequest(w, r, err.Error())

	case errors.Is(err, storage.ErrTransactionNotFound), errors.Is(err, storage.ErrTaskNotFound):
		log.Warn("resource not found", "error", err)
		WriteError(w, r, http.StatusNotFound, CodeNotFound, err.Error())

	case errors.Is(err, storage.ErrRevisionConflict):
		log.Error("document kept changing during update", "error", err)
		WriteError(w, r, http.StatusConflict, CodeConflict, "The data document was modified concurrently, please retry")

	default:
		log.Error("unexpected error", "error", err, "type", fmt.Sprintf("%T", err))
		WriteError(w, r, http.StatusInternalServerError, CodeInternal, "Failed to persist data")
	}
}
