package capture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	n := &Normalizer{
		DefaultAssignee: "me",
		Now:             func() time.Time { return time.Date(2024, 7, 4, 23, 59, 0, 0, time.Local) },
	}

	t.Run("Defaults", func(t *testing.T) {
		date, task, err := n.Normalize(TaskRequest{Text: "  buy milk \n"})

		require.NoError(t, err)
		assert.Equal(t, "2024-07-04", date)
		assert.Equal(t, "buy milk", task.Text)
		assert.Equal(t, []string{"me"}, task.Assignees)
	})

	t.Run("Explicit Values", func(t *testing.T) {
		date, task, err := n.Normalize(TaskRequest{Text: "call", Date: "2024-12-31", Assignee: "sam"})

		require.NoError(t, err)
		assert.Equal(t, "2024-12-31", date)
		assert.Equal(t, []string{"sam"}, task.Assignees)
	})

	t.Run("No Default Identity", func(t *testing.T) {
		_, task, err := (&Normalizer{Now: time.Now}).Normalize(TaskRequest{Text: "x"})

		require.NoError(t, err)
		assert.Empty(t, task.Assignees)
	})

	t.Run("Empty Text", func(t *testing.T) {
		_, _, err := n.Normalize(TaskRequest{Text: "   "})

		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		for _, d := range []string{"04/07/2024", "2024-02-30", "tomorrow"} {
			_, _, err := n.Normalize(TaskRequest{Text: "x", Date: d})
			assert.ErrorIs(t, err, ErrInvalidDate, d)
		}
	})
}

func TestParseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    TaskRequest
		wantErr bool
	}{
		{
			name: "Full",
			raw:  "dashboard://add-task?text=Pay%20rent&date=2024-03-01&assignee=kai",
			want: TaskRequest{Text: "Pay rent", Date: "2024-03-01", Assignee: "kai"},
		},
		{
			name: "Task Alias",
			raw:  "dashboard://add-task?task=water+plants",
			want: TaskRequest{Text: "water plants"},
		},
		{
			name: "Path Form",
			raw:  "DASHBOARD:///add-task?text=x",
			want: TaskRequest{Text: "x"},
		},
		{name: "Wrong Scheme", raw: "https://add-task?text=x", wantErr: true},
		{name: "Unknown Action", raw: "dashboard://delete-task?text=x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
