package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/chris/dashboard-wallpaper/pkg/api"
	"github.com/chris/dashboard-wallpaper/pkg/middleware"
	"github.com/chris/dashboard-wallpaper/pkg/response"
)

// NewRouter mounts the API and the websocket stream on a chi router. ws may be nil.
func NewRouter(h api.ServerInterface, ws http.Handler, log *slog.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewStructuredLogger(log))
	router.Use(chimiddleware.Recoverer)

	if ws != nil {
		router.Handle("/ws", ws)
	}

	api.HandlerWithOptions(h, api.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: response.HandleError,
	})
	return router
}
