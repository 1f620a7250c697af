package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"todolist/internal/core"
	"todolist/internal/http/handler/middleware"
	"todolist/internal/http/payload"

	"go.uber.org/zap"
)

const UsernameHeader = "username"

var (
	CreateUser   = "POST /users"
	GetUser      = "GET /users/{id}"
	UpgradeToPro = "PATCH /users/{id}/pro"
	ListTodos    = "GET /todos"
	CreateTodo   = "POST /todos"
	UpdateTodo   = "PUT /todos/{id}"
	MarkTodoDone = "PATCH /todos/{id}/done"
	DeleteTodo   = "DELETE /todos/{id}"
	Health       = "GET /healthz"
)

type TodoHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	todos            TodoService
}

func NewTodoHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, todoService TodoService) *TodoHandler {
	return &TodoHandler{
		logs:             logger,
		requestValidator: requestValidator,
		todos:            todoService,
	}
}

// Register adds every todo list route to mux.
func (h *TodoHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(CreateUser, h.HandleCreateUser)
	mux.HandleFunc(GetUser, h.HandleGetUser)
	mux.HandleFunc(UpgradeToPro, h.HandleUpgradeToPro)
	mux.HandleFunc(ListTodos, h.HandleListTodos)
	mux.HandleFunc(CreateTodo, h.HandleCreateTodo)
	mux.HandleFunc(UpdateTodo, h.HandleUpdateTodo)
	mux.HandleFunc(MarkTodoDone, h.HandleMarkTodoDone)
	mux.HandleFunc(DeleteTodo, h.HandleDeleteTodo)
	mux.HandleFunc(Health, h.HandleHealth)
}

func (h *TodoHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.CreateUserRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalidPayload(w, "Could not create user", err, CreateUser, requestId)
		return
	}

	user, err := h.todos.CreateUser(req.ToCoreUserMessage())
	if err != nil {
		h.fail(w, "Could not create user", err, CreateUser, requestId)
		return
	}

	h.respond(w, user, http.StatusCreated, requestId)
}

func (h *TodoHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	uc, err := h.todos.ResolveUserByID(r.PathValue("id"))
	if err != nil {
		h.fail(w, "Could not get user", err, GetUser, requestId)
		return
	}

	h.respond(w, h.todos.GetUser(uc), http.StatusOK, requestId)
}

func (h *TodoHandler) HandleUpgradeToPro(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	uc, err := h.todos.ResolveUserByID(r.PathValue("id"))
	if err != nil {
		h.fail(w, "Could not upgrade user", err, UpgradeToPro, requestId)
		return
	}

	user, err := h.todos.UpgradeToPro(uc)
	if err != nil {
		h.fail(w, "Could not upgrade user", err, UpgradeToPro, requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleListTodos(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	uc, err := h.todos.ResolveUser(r.Header.Get(UsernameHeader))
	if err != nil {
		h.fail(w, "Could not list todos", err, ListTodos, requestId)
		return
	}

	h.respond(w, h.todos.ListTodos(uc), http.StatusOK, requestId)
}

func (h *TodoHandler) HandleCreateTodo(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	uc, err := h.todos.ResolveUser(r.Header.Get(UsernameHeader))
	if err != nil {
		h.fail(w, "Could not create todo", err, CreateTodo, requestId)
		return
	}

	qc, err := h.todos.CheckQuota(uc)
	if err != nil {
		h.fail(w, "Could not create todo", err, CreateTodo, requestId)
		return
	}

	msg, err := h.decodeTodo(r)
	if err != nil {
		h.invalidPayload(w, "Could not create todo", err, CreateTodo, requestId)
		return
	}

	h.respond(w, h.todos.CreateTodo(qc, msg), http.StatusCreated, requestId)
}

func (h *TodoHandler) HandleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	tc, err := h.todos.ResolveTodo(r.Header.Get(UsernameHeader), r.PathValue("id"))
	if err != nil {
		h.fail(w, "Could not update todo", err, UpdateTodo, requestId)
		return
	}

	msg, err := h.decodeTodo(r)
	if err != nil {
		h.invalidPayload(w, "Could not update todo", err, UpdateTodo, requestId)
		return
	}

	h.respond(w, h.todos.UpdateTodo(tc, msg), http.StatusOK, requestId)
}

func (h *TodoHandler) HandleMarkTodoDone(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	tc, err := h.todos.ResolveTodo(r.Header.Get(UsernameHeader), r.PathValue("id"))
	if err != nil {
		h.fail(w, "Could not mark todo as done", err, MarkTodoDone, requestId)
		return
	}

	h.respond(w, h.todos.MarkTodoDone(tc), http.StatusOK, requestId)
}

func (h *TodoHandler) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	tc, err := h.todos.ResolveTodo(r.Header.Get(UsernameHeader), r.PathValue("id"))
	if err != nil {
		h.fail(w, "Could not delete todo", err, DeleteTodo, requestId)
		return
	}

	if err := h.todos.DeleteTodo(tc); err != nil {
		h.fail(w, "Could not delete todo", err, DeleteTodo, requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{"status": "ok"}, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}

func (h *TodoHandler) decodeTodo(r *http.Request) (core.TodoMessage, error) {
	var req payload.TodoRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		return core.TodoMessage{}, err
	}
	return req.ToCoreTodoMessage()
}

func (h *TodoHandler) invalidPayload(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

// fail maps core errors to their status codes. Unknown errors are hidden
// behind a generic 500.
func (h *TodoHandler) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}

	var httpCode int
	switch {
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrTodoNotFound):
		httpCode = http.StatusNotFound
	case errors.Is(err, core.ErrUsernameTaken),
		errors.Is(err, core.ErrAlreadyPro),
		errors.Is(err, core.ErrInvalidIdentifier):
		httpCode = http.StatusBadRequest
	case errors.Is(err, core.ErrQuotaExceeded):
		httpCode = http.StatusForbidden
	default:
		httpCode = http.StatusInternalServerError
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", httpCode,
		"handler", handler,
		"request_id", requestId)
}

func (h *TodoHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
