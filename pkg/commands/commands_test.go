package commands

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chris/dashboard-wallpaper/pkg/capture"
	"github.com/chris/dashboard-wallpaper/pkg/config"
	"github.com/chris/dashboard-wallpaper/pkg/handlers"
	"github.com/chris/dashboard-wallpaper/pkg/ingest"
	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/relay"
	"github.com/chris/dashboard-wallpaper/pkg/relay/mocks"
	"github.com/chris/dashboard-wallpaper/pkg/storage/document"
	"github.com/chris/dashboard-wallpaper/pkg/storage/memory"
	"github.com/chris/dashboard-wallpaper/pkg/websockets"
)

func newTestServer(t *testing.T) (*httptest.Server, *document.Store) {
	t.Helper()
	store := document.New(memory.New(), models.DefaultTransactionCapacity)
	publisher := new(websockets.NoOpPublisher)
	h := handlers.NewApiHandler(store, ingest.NewService(nil, store, publisher), capture.NewNormalizer("chris"), publisher)

	server := httptest.NewServer(handlers.NewRouter(h, nil, logger.NewDiscard()))
	t.Cleanup(server.Close)
	return server, store
}

func run(t *testing.T, d *deps, args ...string) (string, error) {
	t.Helper()
	if d.loadCfg == nil {
		d.loadCfg = func() (*config.Config, error) { return nil, errors.New("config not available in tests") }
	}
	cmd := newRootCommand(d)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAddTask(t *testing.T) {
	server, store := newTestServer(t)

	out, err := run(t, &deps{}, "--server", server.URL, "add-task", "Buy", "milk", "--date", "2024-03-01")

	require.NoError(t, err)
	assert.Contains(t, out, `Added task "Buy milk" for 2024-03-01`)

	tasks, err := store.ListTasksByDate(context.Background(), "2024-03-01")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, []string{"chris"}, tasks[0].Assignees)
}

func TestAddTask_InvalidDate(t *testing.T) {
	_, err := run(t, &deps{}, "--server", "http://127.0.0.1:1", "add-task", "x", "--date", "03/01/2024")

	assert.ErrorIs(t, err, capture.ErrInvalidDate)
}

func TestOpenURL(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server, store := newTestServer(t)

		_, err := run(t, &deps{}, "--server", server.URL, "open-url", "dashboard://add-task?task=Call%20mom&date=2024-03-02&assignee=sam")

		require.NoError(t, err)
		tasks, err := store.ListTasksByDate(context.Background(), "2024-03-02")
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Call mom", tasks[0].Text)
		assert.Equal(t, []string{"sam"}, tasks[0].Assignees)
	})

	t.Run("Unsupported Action", func(t *testing.T) {
		_, err := run(t, &deps{}, "--server", "http://127.0.0.1:1", "open-url", "dashboard://delete-everything")

		assert.ErrorIs(t, err, capture.ErrUnsupportedURL)
	})
}

func TestClassify(t *testing.T) {
	out, err := run(t, &deps{}, "classify", "Rs.500", "debited", "via", "UPI")

	require.NoError(t, err)
	assert.Contains(t, out, `"amount": 500`)
	assert.Contains(t, out, `"mode": "UPI"`)

	out, err = run(t, &deps{}, "classify", "see you at 5pm")

	require.NoError(t, err)
	assert.Equal(t, "not a transaction\n", out)
}

func TestImportAndList(t *testing.T) {
	server, _ := newTestServer(t)

	out, err := run(t, &deps{}, "--server", server.URL, "import", "INR 2,000.00 credited to HDFC Bank A/c XX9876 via NEFT", "--origin-id", "mail-1", "--source", "email")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded credited 2000 via NEFT")

	out, err = run(t, &deps{}, "--server", server.URL, "import", "INR 2,000.00 credited to HDFC Bank A/c XX9876 via NEFT", "--origin-id", "mail-1", "--source", "email")
	require.NoError(t, err)
	assert.Equal(t, "already imported\n", out)

	out, err = run(t, &deps{}, "--server", server.URL, "transactions", "-n", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "HDFC")
}

func TestImport_UnknownSource(t *testing.T) {
	_, err := run(t, &deps{}, "--server", "http://127.0.0.1:1", "import", "Rs.5 debited", "--source", "fax")

	assert.ErrorContains(t, err, "unknown source")
}

func TestForwardSMS(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		mockClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
			return aws.ToString(in.QueueUrl) == "https://sqs.example/q" &&
				relay.DecodeBody(aws.ToString(in.MessageBody)) == "Rs.500 debited"
		})).Return(&sqs.SendMessageOutput{MessageId: aws.String("msg-9")}, nil)

		d := &deps{newSQSAPI: func(context.Context) (relay.SQSAPI, error) { return mockClient, nil }}
		out, err := run(t, d, "forward-sms", "Rs.500", "debited", "--queue-url", "https://sqs.example/q", "--sender", "VM-HDFCBK")

		require.NoError(t, err)
		assert.Equal(t, "Queued message msg-9\n", out)
		mockClient.AssertExpectations(t)
	})

	t.Run("No Queue", func(t *testing.T) {
		d := &deps{loadCfg: func() (*config.Config, error) { return &config.Config{}, nil }}

		_, err := run(t, d, "forward-sms", "Rs.500 debited")

		assert.ErrorContains(t, err, "no relay queue configured")
	})
}
