package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris/dashboard-wallpaper/pkg/api"
	"github.com/chris/dashboard-wallpaper/pkg/capture"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"Validation", capture.ErrEmptyText, http.StatusBadRequest, CodeInvalidInput},
		{"Bad Param", &api.InvalidParamFormatError{ParamName: "limit", Err: errors.New("nan")}, http.StatusBadRequest, CodeInvalidInput},
		{"Transaction Missing", fmt.Errorf("tx 1: %w", storage.ErrTransactionNotFound), http.StatusNotFound, CodeNotFound},
		{"Task Missing", fmt.Errorf("task 1: %w", storage.ErrTaskNotFound), http.StatusNotFound, CodeNotFound},
		{"Conflict", fmt.Errorf("after 3 attempts: %w", storage.ErrRevisionConflict), http.StatusConflict, CodeConflict},
		{"Persistence", errors.New("disk full"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			HandleError(rr, req, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var body api.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}
