package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chris/dashboard-wallpaper/pkg/capture"
	"github.com/chris/dashboard-wallpaper/pkg/ingest"
	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage/document"
	"github.com/chris/dashboard-wallpaper/pkg/storage/memory"
	"github.com/chris/dashboard-wallpaper/pkg/storage/mocks"
	"github.com/chris/dashboard-wallpaper/pkg/websockets"
)

func newMockHandler(store *mocks.Storage) *ApiHandler {
	publisher := new(websockets.NoOpPublisher)
	return NewApiHandler(store, ingest.NewService(nil, store, publisher), capture.NewNormalizer(""), publisher)
}

func TestGetHealth(t *testing.T) {
	h := newMockHandler(new(mocks.Storage))

	rr := httptest.NewRecorder()
	h.GetHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"status":"ok"}`, rr.Body.String())
}

func TestGetDocument(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("Document", mock.Anything).Return(models.NewDataDocument(), nil)
		h := newMockHandler(mockStorage)

		rr := httptest.NewRecorder()
		h.GetDocument(rr, httptest.NewRequest(http.MethodGet, "/document", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"statuses":["todo","in-progress","blocked","done"]`)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("Document", mock.Anything).Return(nil, errors.New("permission denied"))
		h := newMockHandler(mockStorage)

		rr := httptest.NewRecorder()
		h.GetDocument(rr, httptest.NewRequest(http.MethodGet, "/document", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

// newRouter wires the real document store on an in-memory backend.
func newRouter(t *testing.T) http.Handler {
	t.Helper()
	store := document.New(memory.New(), models.DefaultTransactionCapacity)
	publisher := new(websockets.NoOpPublisher)
	normalizer := capture.NewNormalizer("chris")
	normalizer.Now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local) }

	h := NewApiHandler(store, ingest.NewService(nil, store, publisher), normalizer, publisher)
	return NewRouter(h, nil, logger.NewDiscard())
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouter(t *testing.T) {
	t.Run("Task Lifecycle", func(t *testing.T) {
		router := newRouter(t)

		rr := serve(router, http.MethodGet, "/siri/add-task?text="+url.QueryEscape("Buy milk"), "")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rr = serve(router, http.MethodGet, "/tasks/2024-03-01", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"text":"Buy milk"`)
		assert.Contains(t, rr.Body.String(), `"assignees":["chris"]`)

		id := between(rr.Body.String(), `"id":"`, `"`)
		require.NotEmpty(t, id)

		rr = serve(router, http.MethodPatch, "/tasks/2024-03-01/"+id, `{"completed":true,"status":"done"}`)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Contains(t, rr.Body.String(), `"completed":true`)

		rr = serve(router, http.MethodDelete, "/tasks/2024-03-01/"+id, "")
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = serve(router, http.MethodDelete, "/tasks/2024-03-01/"+id, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Transaction Flow", func(t *testing.T) {
		router := newRouter(t)

		rr := serve(router, http.MethodPost, "/transactions/import",
			`{"message":"Rs.1,234.56 debited from your account","originId":"mail-1","source":"email"}`)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Contains(t, rr.Body.String(), `"amount":1234.56`)
		id := between(rr.Body.String(), `"id":"`, `"`)

		rr = serve(router, http.MethodPost, "/transactions/import",
			`{"message":"Rs.1,234.56 debited from your account","originId":"mail-1","source":"email"}`)
		assert.JSONEq(t, `{"success":false,"duplicate":true}`, rr.Body.String())

		rr = serve(router, http.MethodGet, "/siri/addTransaction?message="+url.QueryEscape("see you at 5pm"), "")
		assert.JSONEq(t, `{"success":false,"ignored":true}`, rr.Body.String())

		rr = serve(router, http.MethodPatch, "/transactions/"+id+"/read", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"read":true`)

		rr = serve(router, http.MethodGet, "/transactions", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, strings.Count(rr.Body.String(), `"rawMessage"`))
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		rr := serve(newRouter(t), http.MethodGet, "/transactions?limit=many", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"code":"invalid_input"`)
	})

	t.Run("Missing Message", func(t *testing.T) {
		rr := serve(newRouter(t), http.MethodGet, "/siri/addTransaction", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown Transaction", func(t *testing.T) {
		rr := serve(newRouter(t), http.MethodPatch, "/transactions/nope/read", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Health", func(t *testing.T) {
		rr := serve(newRouter(t), http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("Content-Type"))
	})
}

func between(s, start, end string) string {
	_, after, ok := strings.Cut(s, start)
	if !ok {
		return ""
	}
	value, _, _ := strings.Cut(after, end)
	return value
}
