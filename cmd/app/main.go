package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/chris/dashboard-wallpaper/pkg/app"
	"github.com/chris/dashboard-wallpaper/pkg/capture"
	"github.com/chris/dashboard-wallpaper/pkg/config"
	"github.com/chris/dashboard-wallpaper/pkg/handlers"
	wshandler "github.com/chris/dashboard-wallpaper/pkg/handlers/websockets"
	"github.com/chris/dashboard-wallpaper/pkg/ingest"
	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/relay"
	"github.com/chris/dashboard-wallpaper/pkg/storage/document"
	"github.com/chris/dashboard-wallpaper/pkg/websockets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.ToContext(ctx, log)

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	backend, err := app.NewBackend(ctx, cfg)
	if err != nil {
		return err
	}
	c, err := app.NewClassifier(cfg)
	if err != nil {
		return err
	}

	store := document.New(backend, cfg.TransactionCapacity)
	// Load once at startup so a corrupt document is reported before serving.
	if _, err := store.Document(ctx); err != nil {
		return err
	}

	hub := websockets.NewHub()
	ingester := ingest.NewService(c, store, hub)
	handler := handlers.NewApiHandler(store, ingester, capture.NewNormalizer(cfg.DefaultAssignee), hub)
	router := handlers.NewRouter(handler, wshandler.NewHandler(hub), log)

	var wg sync.WaitGroup
	if cfg.SQSQueueURL != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return err
		}
		consumer := relay.NewConsumer(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL, ingester)
		consumer.MaxMessages = cfg.SQSMaxMessages
		consumer.WaitTime = cfg.SQSWaitTime

		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = consumer.Run(ctx)
		}()
	}

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
		BaseContext: baseContext(ctx),
	}
	server.RegisterOnShutdown(hub.Close)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", "addr", cfg.Addr(), "backend", cfg.StorageBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	err = server.Shutdown(shutdownCtx)
	wg.Wait()
	return err
}

// baseContext gives requests the values of ctx but not its cancellation, so a signal
// leaves in-flight requests to Shutdown.
func baseContext(ctx context.Context) func(net.Listener) context.Context {
	detached := context.WithoutCancel(ctx)
	return func(net.Listener) context.Context {
		return detached
	}
}
