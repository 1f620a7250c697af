package handler

import (
	"net/http"
	"todolist/internal/core"
	"todolist/internal/storage/models"
)

type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

type TodoService interface {
	ResolveUser(username string) (core.UserContext, error)
	ResolveUserByID(id string) (core.UserContext, error)
	CheckQuota(uc core.UserContext) (core.QuotaContext, error)
	ResolveTodo(username, todoID string) (core.TodoContext, error)

	CreateUser(msg core.UserMessage) (*models.User, error)
	GetUser(uc core.UserContext) *models.User
	UpgradeToPro(uc core.UserContext) (*models.User, error)
	ListTodos(uc core.UserContext) []*models.Todo
	CreateTodo(qc core.QuotaContext, msg core.TodoMessage) *models.Todo
	UpdateTodo(tc core.TodoContext, msg core.TodoMessage) *models.Todo
	MarkTodoDone(tc core.TodoContext) *models.Todo
	DeleteTodo(tc core.TodoContext) error
}
