package relay

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/chris/dashboard-wallpaper/pkg/ingest"
	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/models"
)

// LambdaHandler consumes the relay queue as an SQS event source.
type LambdaHandler struct {
	Ingester Ingester
}

// NewLambdaHandler creates a new LambdaHandler.
func NewLambdaHandler(ingester Ingester) *LambdaHandler {
	return &LambdaHandler{Ingester: ingester}
}

// HandleSQSEvent ingests every record and reports the ones that failed so that only
// those are retried.
func (h *LambdaHandler) HandleSQSEvent(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse
	for _, message := range sqsEvent.Records {
		log, ctx := logger.With(ctx, "messageId", message.MessageId)

		res, err := h.Ingester.Ingest(ctx, ingest.Message{
			Text:     DecodeBody(message.Body),
			Source:   models.SourceSMSRelay,
			OriginId: message.MessageId,
		})
		if err != nil {
			log.Error("failed to ingest relayed message", "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}
		log.Info("relayed message processed", "status", res.Status)
	}
	return resp, nil
}
