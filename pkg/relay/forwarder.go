package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// Forwarder puts SMS bodies on the relay queue.
type Forwarder struct {
	Client   SQSAPI
	QueueURL string
	Now      func() time.Time
}

// NewForwarder creates a new Forwarder.
func NewForwarder(client SQSAPI, queueURL string) *Forwarder {
	return &Forwarder{
		Client:   client,
		QueueURL: queueURL,
		Now:      time.Now,
	}
}

// Forward sends message to the queue and returns the SQS message id, which becomes the
// origin id of the stored transaction.
func (f *Forwarder) Forward(ctx context.Context, message, sender string) (string, error) {
	if message == "" {
		return "", errors.New("message is required")
	}

	body, err := json.Marshal(Envelope{Message: message, Sender: sender, ReceivedAt: f.Now().UTC()})
	if err != nil {
		return "", fmt.Errorf("failed to marshal message for SQS: %w", err)
	}

	out, err := f.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(f.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return aws.ToString(out.MessageId), nil
}
