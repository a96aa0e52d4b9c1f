package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// (GET /document)
	GetDocument(w http.ResponseWriter, r *http.Request)
	// (GET|POST /siri/add-task)
	SiriAddTask(w http.ResponseWriter, r *http.Request, params SiriAddTaskParams)
	// (GET|POST /siri/addTransaction)
	SiriAddTransaction(w http.ResponseWriter, r *http.Request, params SiriAddTransactionParams)
	// (GET /transactions)
	ListTransactions(w http.ResponseWriter, r *http.Request, params ListTransactionsParams)
	// (POST /transactions/import)
	ImportTransaction(w http.ResponseWriter, r *http.Request)
	// (PATCH /transactions/{id}/read)
	MarkTransactionRead(w http.ResponseWriter, r *http.Request, id string)
	// (GET /tasks)
	ListTasks(w http.ResponseWriter, r *http.Request)
	// (POST /tasks)
	CreateTask(w http.ResponseWriter, r *http.Request)
	// (GET /tasks/{date})
	ListTasksByDate(w http.ResponseWriter, r *http.Request, date string)
	// (PATCH /tasks/{date}/{id})
	UpdateTask(w http.ResponseWriter, r *http.Request, date string, id string)
	// (DELETE /tasks/{date}/{id})
	DeleteTask(w http.ResponseWriter, r *http.Request, date string, id string)
}

// MiddlewareFunc wraps a single operation handler.
type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts requests into typed parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

// InvalidParamFormatError is reported when a parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, handler http.Handler) {
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetHealth))
}

// GetDocument operation middleware
func (siw *ServerInterfaceWrapper) GetDocument(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetDocument))
}

// SiriAddTask operation middleware
func (siw *ServerInterfaceWrapper) SiriAddTask(w http.ResponseWriter, r *http.Request) {
	var params SiriAddTaskParams
	query := r.URL.Query()

	for name, dest := range map[string]**string{
		"text":     &params.Text,
		"task":     &params.Task,
		"date":     &params.Date,
		"assignee": &params.Assignee,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
			return
		}
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SiriAddTask(w, r, params)
	}))
}

// SiriAddTransaction operation middleware
func (siw *ServerInterfaceWrapper) SiriAddTransaction(w http.ResponseWriter, r *http.Request) {
	var params SiriAddTransactionParams

	if err := runtime.BindQueryParameter("form", true, false, "message", r.URL.Query(), &params.Message); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "message", Err: err})
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SiriAddTransaction(w, r, params)
	}))
}

// ListTransactions operation middleware
func (siw *ServerInterfaceWrapper) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var params ListTransactionsParams

	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListTransactions(w, r, params)
	}))
}

// ImportTransaction operation middleware
func (siw *ServerInterfaceWrapper) ImportTransaction(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.ImportTransaction))
}

// MarkTransactionRead operation middleware
func (siw *ServerInterfaceWrapper) MarkTransactionRead(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.pathParam(w, r, "id")
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.MarkTransactionRead(w, r, id)
	}))
}

// ListTasks operation middleware
func (siw *ServerInterfaceWrapper) ListTasks(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.ListTasks))
}

// CreateTask operation middleware
func (siw *ServerInterfaceWrapper) CreateTask(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CreateTask))
}

// ListTasksByDate operation middleware
func (siw *ServerInterfaceWrapper) ListTasksByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := siw.pathParam(w, r, "date")
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListTasksByDate(w, r, date)
	}))
}

// UpdateTask operation middleware
func (siw *ServerInterfaceWrapper) UpdateTask(w http.ResponseWriter, r *http.Request) {
	date, ok := siw.pathParam(w, r, "date")
	if !ok {
		return
	}
	id, ok := siw.pathParam(w, r, "id")
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateTask(w, r, date, id)
	}))
}

// DeleteTask operation middleware
func (siw *ServerInterfaceWrapper) DeleteTask(w http.ResponseWriter, r *http.Request) {
	date, ok := siw.pathParam(w, r, "date")
	if !ok {
		return
	}
	id, ok := siw.pathParam(w, r, "id")
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteTask(w, r, date, id)
	}))
}

func (siw *ServerInterfaceWrapper) pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
		return "", false
	}
	return value, true
}

// Handler creates http.Handler with routing matching the API.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching the API, mounted on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/health", wrapper.GetHealth)
		r.Get(options.BaseURL+"/document", wrapper.GetDocument)
		r.Get(options.BaseURL+"/siri/add-task", wrapper.SiriAddTask)
		r.Post(options.BaseURL+"/siri/add-task", wrapper.SiriAddTask)
		r.Get(options.BaseURL+"/siri/addTransaction", wrapper.SiriAddTransaction)
		r.Post(options.BaseURL+"/siri/addTransaction", wrapper.SiriAddTransaction)
		r.Get(options.BaseURL+"/transactions", wrapper.ListTransactions)
		r.Post(options.BaseURL+"/transactions/import", wrapper.ImportTransaction)
		r.Patch(options.BaseURL+"/transactions/{id}/read", wrapper.MarkTransactionRead)
		r.Get(options.BaseURL+"/tasks", wrapper.ListTasks)
		r.Post(options.BaseURL+"/tasks", wrapper.CreateTask)
		r.Get(options.BaseURL+"/tasks/{date}", wrapper.ListTasksByDate)
		r.Patch(options.BaseURL+"/tasks/{date}/{id}", wrapper.UpdateTask)
		r.Delete(options.BaseURL+"/tasks/{date}/{id}", wrapper.DeleteTask)
	})

	return r
}
