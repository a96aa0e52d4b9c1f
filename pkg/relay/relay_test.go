package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chris/dashboard-wallpaper/pkg/ingest"
	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/relay/mocks"
)

const queueURL = "https://sqs.ap-south-1.amazonaws.com/123456789012/sms-relay"

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"Envelope", `{"message":"Rs.500 debited","sender":"VM-HDFCBK"}`, "Rs.500 debited"},
		{"Raw Text", "  Rs.500 debited\n", "Rs.500 debited"},
		{"JSON Without Message", `{"text":"hello"}`, `{"text":"hello"}`},
		{"Broken JSON", `{"message":`, `{"message":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeBody(tt.body))
		})
	}
}

func TestForwarder_Forward(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		f := NewForwarder(mockClient, queueURL)
		f.Now = func() time.Time { return now }

		mockClient.On("SendMessage", ctx, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
			return aws.ToString(in.QueueUrl) == queueURL &&
				DecodeBody(aws.ToString(in.MessageBody)) == "Rs.500 debited"
		})).Return(&sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil)

		id, err := f.Forward(ctx, "Rs.500 debited", "VM-HDFCBK")

		require.NoError(t, err)
		assert.Equal(t, "msg-1", id)
		mockClient.AssertExpectations(t)
	})

	t.Run("Empty Message", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		f := NewForwarder(mockClient, queueURL)

		_, err := f.Forward(ctx, "", "")

		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
	})

	t.Run("SQS Error", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		f := NewForwarder(mockClient, queueURL)

		mockClient.On("SendMessage", ctx, mock.Anything).Return(nil, errors.New("throttled"))

		_, err := f.Forward(ctx, "Rs.500 debited", "")

		assert.ErrorContains(t, err, "throttled")
		mockClient.AssertExpectations(t)
	})
}

func sqsMessage(id, body string) types.Message {
	return types.Message{
		MessageId:     aws.String(id),
		Body:          aws.String(body),
		ReceiptHandle: aws.String("receipt-" + id),
	}
}

func TestConsumer_Poll(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		mockIngester := new(mocks.Ingester)
		c := NewConsumer(mockClient, queueURL, mockIngester)

		mockClient.On("ReceiveMessage", ctx, mock.MatchedBy(func(in *sqs.ReceiveMessageInput) bool {
			return in.MaxNumberOfMessages == DefaultMaxMessages && in.WaitTimeSeconds == 20
		})).Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{
			sqsMessage("m1", `{"message":"Rs.500 debited"}`),
			sqsMessage("m2", "see you at 5pm"),
		}}, nil)
		mockIngester.On("Ingest", mock.Anything, ingest.Message{Text: "Rs.500 debited", Source: models.SourceSMSRelay, OriginId: "m1"}).
			Return(&ingest.Result{Status: ingest.StatusRecorded}, nil)
		mockIngester.On("Ingest", mock.Anything, ingest.Message{Text: "see you at 5pm", Source: models.SourceSMSRelay, OriginId: "m2"}).
			Return(&ingest.Result{Status: ingest.StatusIgnored}, nil)
		mockClient.On("DeleteMessage", mock.Anything, &sqs.DeleteMessageInput{QueueUrl: aws.String(queueURL), ReceiptHandle: aws.String("receipt-m1")}).
			Return(&sqs.DeleteMessageOutput{}, nil)
		mockClient.On("DeleteMessage", mock.Anything, &sqs.DeleteMessageInput{QueueUrl: aws.String(queueURL), ReceiptHandle: aws.String("receipt-m2")}).
			Return(&sqs.DeleteMessageOutput{}, nil)

		n, err := c.Poll(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		mockClient.AssertExpectations(t)
		mockIngester.AssertExpectations(t)
	})

	t.Run("Ingest Error Keeps Message", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		mockIngester := new(mocks.Ingester)
		c := NewConsumer(mockClient, queueURL, mockIngester)

		mockClient.On("ReceiveMessage", ctx, mock.Anything).
			Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{sqsMessage("m1", "Rs.500 debited")}}, nil)
		mockIngester.On("Ingest", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

		n, err := c.Poll(ctx)

		assert.ErrorContains(t, err, "m1")
		assert.Equal(t, 0, n)
		mockClient.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
	})

	t.Run("Receive Error", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		c := NewConsumer(mockClient, queueURL, new(mocks.Ingester))

		mockClient.On("ReceiveMessage", ctx, mock.Anything).Return(nil, errors.New("access denied"))

		_, err := c.Poll(ctx)

		assert.ErrorContains(t, err, "access denied")
	})
}

func TestConsumer_Run_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mockClient := new(mocks.SQSAPI)
	c := NewConsumer(mockClient, queueURL, new(mocks.Ingester))

	mockClient.On("ReceiveMessage", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(&sqs.ReceiveMessageOutput{}, nil)

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
}

func TestLambdaHandler_HandleSQSEvent(t *testing.T) {
	ctx := context.Background()
	mockIngester := new(mocks.Ingester)
	h := NewLambdaHandler(mockIngester)

	mockIngester.On("Ingest", mock.Anything, mock.MatchedBy(func(m ingest.Message) bool { return m.OriginId == "ok" })).
		Return(&ingest.Result{Status: ingest.StatusRecorded}, nil)
	mockIngester.On("Ingest", mock.Anything, mock.MatchedBy(func(m ingest.Message) bool { return m.OriginId == "dup" })).
		Return(&ingest.Result{Status: ingest.StatusDuplicate}, nil)
	mockIngester.On("Ingest", mock.Anything, mock.MatchedBy(func(m ingest.Message) bool { return m.OriginId == "bad" })).
		Return(nil, errors.New("revision conflict"))

	resp, err := h.HandleSQSEvent(ctx, events.SQSEvent{Records: []events.SQSMessage{
		{MessageId: "ok", Body: "Rs.500 debited"},
		{MessageId: "dup", Body: "Rs.500 debited"},
		{MessageId: "bad", Body: "Rs.500 debited"},
	}})

	require.NoError(t, err)
	assert.Equal(t, []events.SQSBatchItemFailure{{ItemIdentifier: "bad"}}, resp.BatchItemFailures)
	mockIngester.AssertExpectations(t)
}
