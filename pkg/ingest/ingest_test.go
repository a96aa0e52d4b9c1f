package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
	storagemocks "github.com/chris/dashboard-wallpaper/pkg/storage/mocks"
	"github.com/chris/dashboard-wallpaper/pkg/websockets"
	wsmocks "github.com/chris/dashboard-wallpaper/pkg/websockets/mocks"
)

func TestService_Ingest(t *testing.T) {
	ctx := context.Background()
	text := "Rs.500 debited from A/c XX1234 to ZOMATO via UPI. HDFC Bank"

	t.Run("Success", func(t *testing.T) {
		mockStore := new(storagemocks.TransactionManager)
		mockPublisher := new(wsmocks.Publisher)
		svc := NewService(nil, mockStore, mockPublisher)

		mockStore.On("AppendTransaction", mock.Anything, mock.MatchedBy(func(rec *models.TransactionRecord) bool {
			return rec.OriginId == "sms-1" && rec.Source == models.SourceSMSRelay && rec.Amount.Equal(decimal.NewFromInt(500))
		})).Return(func(_ context.Context, rec *models.TransactionRecord) (*models.TransactionRecord, error) {
			stored := *rec
			stored.Id = "tx-1"
			return &stored, nil
		})
		mockPublisher.On("Publish", mock.Anything, mock.MatchedBy(func(m websockets.Message) bool {
			return m.Type == websockets.MessageTypeTransactionAdded
		})).Return(nil)

		res, err := svc.Ingest(ctx, Message{Text: text, Source: models.SourceSMSRelay, OriginId: "sms-1"})

		require.NoError(t, err)
		assert.Equal(t, StatusRecorded, res.Status)
		require.NotNil(t, res.Transaction)
		assert.Equal(t, "tx-1", res.Transaction.Id)
		assert.Equal(t, "ZOMATO", res.Transaction.Description)
		mockStore.AssertExpectations(t)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("Ignored", func(t *testing.T) {
		mockStore := new(storagemocks.TransactionManager)
		svc := NewService(nil, mockStore, new(websockets.NoOpPublisher))

		res, err := svc.Ingest(ctx, Message{Text: "see you at 5pm", Source: models.SourceVoice})

		require.NoError(t, err)
		assert.Equal(t, StatusIgnored, res.Status)
		assert.Nil(t, res.Transaction)
		mockStore.AssertNotCalled(t, "AppendTransaction", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockStore := new(storagemocks.TransactionManager)
		svc := NewService(nil, mockStore, new(websockets.NoOpPublisher))

		mockStore.On("AppendTransaction", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("failed to append: %w", storage.ErrDuplicateTransaction))

		res, err := svc.Ingest(ctx, Message{Text: text, Source: models.SourceEmail, OriginId: "mail-1"})

		require.NoError(t, err)
		assert.Equal(t, StatusDuplicate, res.Status)
		mockStore.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStore := new(storagemocks.TransactionManager)
		svc := NewService(nil, mockStore, new(websockets.NoOpPublisher))

		mockStore.On("AppendTransaction", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

		res, err := svc.Ingest(ctx, Message{Text: text, Source: models.SourceAPI})

		assert.Error(t, err)
		assert.Nil(t, res)
		mockStore.AssertExpectations(t)
	})

	t.Run("Publish Error Is Not Fatal", func(t *testing.T) {
		mockStore := new(storagemocks.TransactionManager)
		mockPublisher := new(wsmocks.Publisher)
		svc := NewService(nil, mockStore, mockPublisher)

		mockStore.On("AppendTransaction", mock.Anything, mock.Anything).Return(&models.TransactionRecord{Id: "tx-2"}, nil)
		mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("closed"))

		res, err := svc.Ingest(ctx, Message{Text: text, Source: models.SourceVoice})

		require.NoError(t, err)
		assert.Equal(t, StatusRecorded, res.Status)
		mockPublisher.AssertExpectations(t)
	})
}
