package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/chris/dashboard-wallpaper/pkg/logger"
)

// NewStructuredLogger logs one line per request and stores a request-scoped logger
// in the context for handlers to use. It expects middleware.RequestID to run first.
func NewStructuredLogger(base *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			tww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqLogger := base
			if id := middleware.GetReqID(r.Context()); id != "" {
				reqLogger = base.With(slog.String("request_id", id))
			}

			tStart := time.Now()
			defer func() {
				status := tww.Status()
				latency := time.Since(tStart)

				requestAttrs := slog.Group("request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
				)

				responseAttrs := slog.Group("response",
					slog.Int("status", status),
					slog.Int("bytes", tww.BytesWritten()),
					slog.String("latency", latency.String()),
				)

				if status >= 500 {
					reqLogger.Error("server error", requestAttrs, responseAttrs)
				} else {
					reqLogger.Info("request completed", requestAttrs, responseAttrs)
				}
			}()

			next.ServeHTTP(tww, r.WithContext(logger.ToContext(r.Context(), reqLogger)))
		}
		return http.HandlerFunc(fn)
	}
}
