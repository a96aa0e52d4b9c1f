package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/chris/dashboard-wallpaper/pkg/app"
	"github.com/chris/dashboard-wallpaper/pkg/config"
	"github.com/chris/dashboard-wallpaper/pkg/ingest"
	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/relay"
	"github.com/chris/dashboard-wallpaper/pkg/storage/document"
	"github.com/chris/dashboard-wallpaper/pkg/websockets"
)

var handler *relay.LambdaHandler

func init() {
	// Load environment variables from .env file (useful for local testing).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.New(os.Stdout, cfg.LogLevel, "json"))

	// The Lambda shares the document with the server only through DynamoDB.
	if cfg.StorageBackend != config.BackendDynamoDB {
		slog.Error("relay lambda requires STORAGE_BACKEND=dynamodb", "backend", cfg.StorageBackend)
		os.Exit(1)
	}

	backend, err := app.NewBackend(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to create storage backend", "error", err)
		os.Exit(1)
	}
	c, err := app.NewClassifier(cfg)
	if err != nil {
		slog.Error("failed to load classifier rules", "error", err)
		os.Exit(1)
	}

	// No websocket clients are connected to a Lambda, so nothing is published.
	ingester := ingest.NewService(c, document.New(backend, cfg.TransactionCapacity), new(websockets.NoOpPublisher))
	handler = relay.NewLambdaHandler(ingester)
}

func main() {
	lambda.Start(handler.HandleSQSEvent)
}
