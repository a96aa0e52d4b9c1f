// Package relay moves forwarded SMS notifications through an SQS queue into the
// transaction store. The phone-side forwarder sends, the server or a Lambda consumes.
package relay

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/chris/dashboard-wallpaper/pkg/ingest"
)

// SQSAPI is the subset of the SQS client used by the relay.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Ingester records one inbound message. *ingest.Service implements it.
type Ingester interface {
	Ingest(ctx context.Context, msg ingest.Message) (*ingest.Result, error)
}

var _ Ingester = (*ingest.Service)(nil)

// Envelope is the JSON body the forwarder puts on the queue.
type Envelope struct {
	Message    string    `json:"message"`
	Sender     string    `json:"sender,omitempty"`
	ReceivedAt time.Time `json:"receivedAt,omitempty"`
}

// DecodeBody extracts the SMS text from a queue message body. Bodies that are not an
// Envelope are taken as the raw SMS text.
func DecodeBody(body string) string {
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "{") {
		var env Envelope
		if err := json.Unmarshal([]byte(trimmed), &env); err == nil && env.Message != "" {
			return env.Message
		}
	}
	return trimmed
}
