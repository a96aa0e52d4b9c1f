// Package capture normalizes task requests arriving from the HTTP endpoint, the
// custom URL scheme and the CLI into one creation contract.
package capture

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chris/dashboard-wallpaper/pkg/models"
)

// DateLayout is the ISO date used as the task collection key.
const DateLayout = "2006-01-02"

// Scheme is the custom URL scheme handled by ParseURL.
const Scheme = "dashboard"

var (
	ErrEmptyText      = errors.New("task text is required")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD form")
	ErrUnsupportedURL = errors.New("unsupported url")
)

// TaskRequest is raw input from any capture channel. Empty fields take defaults.
type TaskRequest struct {
	Text     string `json:"text"`
	Date     string `json:"date,omitempty"`
	Assignee string `json:"assignee,omitempty"`
}

// Normalizer applies capture defaults.
type Normalizer struct {
	DefaultAssignee string
	Now             func() time.Time
}

// NewNormalizer creates a Normalizer using the local clock.
func NewNormalizer(defaultAssignee string) *Normalizer {
	return &Normalizer{DefaultAssignee: defaultAssignee, Now: time.Now}
}

// Normalize trims the text, defaults the date to today in local time and the
// assignee to the configured identity. It returns the date key and the task to create.
func (n *Normalizer) Normalize(req TaskRequest) (string, *models.TaskRecord, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return "", nil, ErrEmptyText
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = n.Now().Format(DateLayout)
	} else if err := ValidateDate(date); err != nil {
		return "", nil, err
	}

	task := &models.TaskRecord{Text: text, Assignees: []string{}}
	assignee := strings.TrimSpace(req.Assignee)
	if assignee == "" {
		assignee = n.DefaultAssignee
	}
	if assignee != "" {
		task.Assignees = append(task.Assignees, assignee)
	}
	return date, task, nil
}

// ValidateDate reports ErrInvalidDate unless date is a real YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// ParseURL turns dashboard://add-task?text=..&date=..&assignee=.. into a TaskRequest.
// "task" is accepted as an alias for "text".
func ParseURL(raw string) (TaskRequest, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return TaskRequest{}, fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	if !strings.EqualFold(u.Scheme, Scheme) {
		return TaskRequest{}, fmt.Errorf("%w: scheme %q", ErrUnsupportedURL, u.Scheme)
	}

	action := u.Host
	if action == "" {
		action = strings.Trim(u.Path, "/")
		if action == "" {
			action = u.Opaque
		}
	}
	switch strings.ToLower(action) {
	case "add-task", "addtask":
	default:
		return TaskRequest{}, fmt.Errorf("%w: action %q", ErrUnsupportedURL, action)
	}

	q := u.Query()
	text := q.Get("text")
	if text == "" {
		text = q.Get("task")
	}
	return TaskRequest{Text: text, Date: q.Get("date"), Assignee: q.Get("assignee")}, nil
}
