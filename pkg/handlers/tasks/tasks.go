package tasks

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/chris/dashboard-wallpaper/pkg/api"
	"github.com/chris/dashboard-wallpaper/pkg/capture"
	"github.com/chris/dashboard-wallpaper/pkg/handlers/params"
	"github.com/chris/dashboard-wallpaper/pkg/logger"
	"github.com/chris/dashboard-wallpaper/pkg/mapping"
	"github.com/chris/dashboard-wallpaper/pkg/response"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
	"github.com/chris/dashboard-wallpaper/pkg/websockets"
)

// TasksHandler holds the dependencies for task-related handlers.
type TasksHandler struct {
	Store      storage.TaskStore
	Normalizer *capture.Normalizer
	Publisher  websockets.Publisher
}

// NewTasksHandler creates a new TasksHandler.
func NewTasksHandler(store storage.TaskStore, normalizer *capture.Normalizer, publisher websockets.Publisher) *TasksHandler {
	return &TasksHandler{Store: store, Normalizer: normalizer, Publisher: publisher}
}

// ListTasks returns every task grouped by date.
func (h *TasksHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	byDate, err := h.Store.ListTasks(r.Context())
	if err != nil {
		response.HandleError(w, r, fmt.Errorf("failed to list tasks: %w", err))
		return
	}

	out := make(map[string][]api.Task, len(byDate))
	for date, tasks := range byDate {
		out[date] = mapping.ToApiTasks(date, tasks)
	}
	response.WriteJSON(w, r, http.StatusOK, api.TaskListResponse{Success: true, Tasks: out})
}

// ListTasksByDate returns the tasks for one day.
func (h *TasksHandler) ListTasksByDate(w http.ResponseWriter, r *http.Request, date string) {
	if err := capture.ValidateDate(date); err != nil {
		response.HandleError(w, r, err)
		return
	}

	tasks, err := h.Store.ListTasksByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, r, fmt.Errorf("failed to list tasks: %w", err))
		return
	}

	day, _ := time.Parse(capture.DateLayout, date)
	response.WriteJSON(w, r, http.StatusOK, api.TasksByDateResponse{
		Success: true,
		Date:    openapi_types.Date{Time: day},
		Tasks:   mapping.ToApiTasks(date, tasks),
	})
}

// CreateTask captures a task from the dashboard UI.
func (h *TasksHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var body api.NewTask
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, r, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	h.create(w, r, http.StatusCreated, capture.TaskRequest{
		Text:     params.First(params.Deref(body.Text), params.Deref(body.Task)),
		Date:     params.Deref(body.Date),
		Assignee: params.Deref(body.Assignee),
	})
}

// SiriAddTask captures a task from a voice shortcut. Fields come from the query
// string first, then from a JSON or form body.
func (h *TasksHandler) SiriAddTask(w http.ResponseWriter, r *http.Request, p api.SiriAddTaskParams) {
	req := capture.TaskRequest{
		Text:     params.First(params.Deref(p.Text), params.Deref(p.Task)),
		Date:     params.Deref(p.Date),
		Assignee: params.Deref(p.Assignee),
	}

	// The body is only read when the query carries no text.
	if strings.TrimSpace(req.Text) == "" {
		fields, err := params.Fields(r)
		if err != nil {
			response.BadRequest(w, r, err.Error())
			return
		}
		req.Text = params.First(fields["text"], fields["task"])
		req.Date = params.First(req.Date, fields["date"])
		req.Assignee = params.First(req.Assignee, fields["assignee"])
	}

	h.create(w, r, http.StatusOK, req)
}

func (h *TasksHandler) create(w http.ResponseWriter, r *http.Request, status int, req capture.TaskRequest) {
	date, task, err := h.Normalizer.Normalize(req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	created, err := h.Store.CreateTask(r.Context(), date, task)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	apiTask := mapping.ToApiTask(date, created)
	h.publish(r, websockets.MessageTypeTaskAdded, websockets.TaskPayload{Date: date, Task: apiTask})
	response.WriteJSON(w, r, status, api.TaskResponse{Success: true, Task: apiTask})
}

// UpdateTask applies a partial update.
func (h *TasksHandler) UpdateTask(w http.ResponseWriter, r *http.Request, date string, id string) {
	var body api.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, r, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if body.Text != nil && strings.TrimSpace(*body.Text) == "" {
		response.HandleError(w, r, capture.ErrEmptyText)
		return
	}

	updated, err := h.Store.UpdateTask(r.Context(), date, id, mapping.ToDomainTaskPatch(&body))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	apiTask := mapping.ToApiTask(date, updated)
	h.publish(r, websockets.MessageTypeTaskUpdated, websockets.TaskPayload{Date: date, Task: apiTask})
	response.WriteJSON(w, r, http.StatusOK, api.TaskResponse{Success: true, Task: apiTask})
}

// DeleteTask removes a task.
func (h *TasksHandler) DeleteTask(w http.ResponseWriter, r *http.Request, date string, id string) {
	if err := h.Store.DeleteTask(r.Context(), date, id); err != nil {
		response.HandleError(w, r, err)
		return
	}

	h.publish(r, websockets.MessageTypeTaskDeleted, websockets.TaskDeletedPayload{Date: date, TaskID: id})
	w.WriteHeader(http.StatusNoContent)
}

func (h *TasksHandler) publish(r *http.Request, t websockets.MessageType, payload interface{}) {
	if err := h.Publisher.Publish(r.Context(), websockets.Message{Type: t, Payload: payload}); err != nil {
		logger.FromContext(r.Context()).Error("failed to publish websocket message", "type", t, "error", err)
	}
}
