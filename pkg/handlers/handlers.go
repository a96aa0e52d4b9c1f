package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/dashboard-wallpaper/pkg/api"
	"github.com/chris/dashboard-wallpaper/pkg/capture"
	"github.com/chris/dashboard-wallpaper/pkg/handlers/tasks"
	"github.com/chris/dashboard-wallpaper/pkg/handlers/transactions"
	"github.com/chris/dashboard-wallpaper/pkg/response"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
	"github.com/chris/dashboard-wallpaper/pkg/websockets"
)

// ApiHandler implements the generated server interface by delegating to the
// per-resource handlers.
type ApiHandler struct {
	*transactions.TransactionsHandler
	*tasks.TasksHandler

	Store storage.Storage
}

// NewApiHandler wires the sub-handlers around one storage layer.
func NewApiHandler(store storage.Storage, ingester transactions.Ingester, normalizer *capture.Normalizer, publisher websockets.Publisher) *ApiHandler {
	return &ApiHandler{
		TransactionsHandler: transactions.NewTransactionsHandler(store, ingester, publisher),
		TasksHandler:        tasks.NewTasksHandler(store, normalizer, publisher),
		Store:               store,
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// GetHealth reports that the server is up.
func (h *ApiHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, r, http.StatusOK, api.HealthResponse{Success: true, Status: "ok"})
}

// GetDocument returns the whole persisted document for wallpaper renderers.
func (h *ApiHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Store.Document(r.Context())
	if err != nil {
		response.HandleError(w, r, fmt.Errorf("failed to load document: %w", err))
		return
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		response.HandleError(w, r, fmt.Errorf("failed to marshal document: %w", err))
		return
	}
	response.WriteJSON(w, r, http.StatusOK, api.DocumentResponse{Success: true, Document: raw})
}
