package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/chris/dashboard-wallpaper/pkg/ingest"
	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/models"
)

const (
	DefaultMaxMessages = 10
	DefaultWaitTime    = 20 * time.Second

	// errorBackoff is how long Run waits after a failed receive.
	errorBackoff = 5 * time.Second
)

// Consumer long-polls the relay queue and ingests each message.
type Consumer struct {
	Client      SQSAPI
	QueueURL    string
	Ingester    Ingester
	MaxMessages int32
	WaitTime    time.Duration
}

// NewConsumer creates a Consumer with the default batch size and wait time.
func NewConsumer(client SQSAPI, queueURL string, ingester Ingester) *Consumer {
	return &Consumer{
		Client:      client,
		QueueURL:    queueURL,
		Ingester:    ingester,
		MaxMessages: DefaultMaxMessages,
		WaitTime:    DefaultWaitTime,
	}
}

// Run polls until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).With("queueUrl", c.QueueURL)
	log.Info("SMS relay consumer started")

	for {
		if _, err := c.Poll(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Error("failed to poll relay queue", "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(errorBackoff):
			}
		}
		if ctx.Err() != nil {
			break
		}
	}

	log.Info("SMS relay consumer stopped")
	return nil
}

// Poll receives one batch and returns how many messages were processed and deleted.
// A message that fails to ingest stays on the queue and is redelivered after its
// visibility timeout.
func (c *Consumer) Poll(ctx context.Context) (int, error) {
	out, err := c.Client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.QueueURL),
		MaxNumberOfMessages: c.MaxMessages,
		WaitTimeSeconds:     int32(c.WaitTime / time.Second),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to receive messages from SQS: %w", err)
	}

	var errs []error
	processed := 0
	for _, msg := range out.Messages {
		if err := c.handle(ctx, msg); err != nil {
			errs = append(errs, err)
			continue
		}
		processed++
	}
	return processed, errors.Join(errs...)
}

func (c *Consumer) handle(ctx context.Context, msg types.Message) error {
	id := aws.ToString(msg.MessageId)
	log, ctx := logger.With(ctx, "messageId", id)

	res, err := c.Ingester.Ingest(ctx, ingest.Message{
		Text:     DecodeBody(aws.ToString(msg.Body)),
		Source:   models.SourceSMSRelay,
		OriginId: id,
	})
	if err != nil {
		log.Error("failed to ingest relayed message", "error", err)
		return fmt.Errorf("message %s: %w", id, err)
	}
	log.Debug("relayed message processed", "status", res.Status)

	if _, err := c.Client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.QueueURL),
		ReceiptHandle: msg.ReceiptHandle,
	}); err != nil {
		return fmt.Errorf("failed to delete message %s from SQS: %w", id, err)
	}
	return nil
}
