package transactions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/chris/dashboard-wallpaper/pkg/api"
	"github.com/chris/dashboard-wallpaper/pkg/handlers/params"
	"github.com/chris/dashboard-wallpaper/pkg/ingest"
	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/mapping"
	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/response"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
	"github.com/chris/dashboard-wallpaper/pkg/websockets"
)

// Ingester classifies and records one inbound message.
type Ingester interface {
	Ingest(ctx context.Context, msg ingest.Message) (*ingest.Result, error)
}

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	Store     storage.TransactionStore
	Ingester  Ingester
	Publisher websockets.Publisher
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(store storage.TransactionStore, ingester Ingester, publisher websockets.Publisher) *TransactionsHandler {
	return &TransactionsHandler{Store: store, Ingester: ingester, Publisher: publisher}
}

// ListTransactions returns the newest transactions first.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request, p api.ListTransactionsParams) {
	limit := 0
	if p.Limit != nil {
		limit = *p.Limit
	}

	txs, err := h.Store.ListTransactions(r.Context(), limit)
	if err != nil {
		response.HandleError(w, r, fmt.Errorf("failed to list transactions: %w", err))
		return
	}

	response.WriteJSON(w, r, http.StatusOK, api.TransactionListResponse{
		Success:      true,
		Transactions: mapping.ToApiTransactions(txs),
	})
}

// SiriAddTransaction records a message dictated or shared from a voice shortcut.
// The message comes from the query string, or from a JSON or form body.
func (h *TransactionsHandler) SiriAddTransaction(w http.ResponseWriter, r *http.Request, p api.SiriAddTransactionParams) {
	message := params.Deref(p.Message)
	if strings.TrimSpace(message) == "" {
		fields, err := params.Fields(r)
		if err != nil {
			response.BadRequest(w, r, err.Error())
			return
		}
		message = fields["message"]
	}
	if strings.TrimSpace(message) == "" {
		response.BadRequest(w, r, "message is required")
		return
	}

	h.ingest(w, r, ingest.Message{Text: message, Source: models.SourceVoice})
}

// ImportTransaction records a message forwarded by the email or SMS relay channel.
func (h *TransactionsHandler) ImportTransaction(w http.ResponseWriter, r *http.Request) {
	var body api.ImportTransaction
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, r, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if strings.TrimSpace(body.Message) == "" {
		response.BadRequest(w, r, "message is required")
		return
	}

	source := models.SourceAPI
	if body.Source != nil && *body.Source != "" {
		source = models.Source(*body.Source)
		if !source.Valid() {
			response.BadRequest(w, r, fmt.Sprintf("unknown source %q", *body.Source))
			return
		}
	}

	h.ingest(w, r, ingest.Message{
		Text:     body.Message,
		Source:   source,
		OriginId: strings.TrimSpace(params.Deref(body.OriginId)),
	})
}

func (h *TransactionsHandler) ingest(w http.ResponseWriter, r *http.Request, msg ingest.Message) {
	res, err := h.Ingester.Ingest(r.Context(), msg)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	resp := api.TransactionResponse{}
	switch res.Status {
	case ingest.StatusIgnored:
		ignored := true
		resp.Ignored = &ignored
	case ingest.StatusDuplicate:
		duplicate := true
		resp.Duplicate = &duplicate
	default:
		resp.Success = true
		resp.Transaction = mapping.ToApiTransaction(res.Transaction)
	}
	response.WriteJSON(w, r, http.StatusOK, resp)
}

// MarkTransactionRead flags a transaction as seen on the wallpaper.
func (h *TransactionsHandler) MarkTransactionRead(w http.ResponseWriter, r *http.Request, id string) {
	tx, err := h.Store.MarkTransactionRead(r.Context(), id)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	apiTx := mapping.ToApiTransaction(tx)
	if err := h.Publisher.Publish(r.Context(), websockets.Message{
		Type:    websockets.MessageTypeTransactionRead,
		Payload: websockets.TransactionPayload{Transaction: apiTx},
	}); err != nil {
		logger.FromContext(r.Context()).Error("failed to publish websocket message", "error", err)
	}

	response.WriteJSON(w, r, http.StatusOK, api.TransactionResponse{Success: true, Transaction: apiTx})
}
