package core

import (
	"errors"
	"slices"
	"time"
	"todolist/internal/storage/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var TimeNow = time.Now

var (
	ErrUserNotFound      error = errors.New("user not found")
	ErrUsernameTaken     error = errors.New("username already exists")
	ErrQuotaExceeded     error = errors.New("free plan todo limit reached, upgrade to the pro plan")
	ErrInvalidIdentifier error = errors.New("todo id is not a valid uuid")
	ErrTodoNotFound      error = errors.New("todo not found")
	ErrAlreadyPro        error = errors.New("pro plan is already activated")
)

// DefaultFreeLimit is the number of todos a user on the free plan may keep.
const DefaultFreeLimit = 10

// TodoList implements the user and todo operations on top of a Store.
type TodoList struct {
	logs      *zap.SugaredLogger
	store     Store
	freeLimit int
}

// NewTodoList is a constructor function for the TodoList type. A
// non-positive freeLimit falls back to DefaultFreeLimit.
func NewTodoList(logger *zap.SugaredLogger, store Store, freeLimit int) *TodoList {
	if freeLimit <= 0 {
		freeLimit = DefaultFreeLimit
	}

	return &TodoList{
		logs:      logger,
		store:     store,
		freeLimit: freeLimit,
	}
}

// CreateUser registers a new free plan user with an empty todo list.
func (t *TodoList) CreateUser(msg UserMessage) (*models.User, error) {
	if t.store.UsernameExists(msg.Username) {
		return nil, ErrUsernameTaken
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Name:     msg.Name,
		Username: msg.Username,
		Pro:      false,
		Todos:    []*models.Todo{},
	}
	t.store.AddUser(user)

	t.logs.Infow("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (t *TodoList) GetUser(uc UserContext) *models.User {
	return uc.User()
}

// UpgradeToPro moves the user to the pro plan. There is no way back.
func (t *TodoList) UpgradeToPro(uc UserContext) (*models.User, error) {
	user := uc.User()
	if user.Pro {
		return nil, ErrAlreadyPro
	}

	user.Pro = true

	t.logs.Infow("user upgraded to pro plan", "user_id", user.ID)
	return user, nil
}

func (t *TodoList) ListTodos(uc UserContext) []*models.Todo {
	return uc.User().Todos
}

// CreateTodo appends a new todo to the end of the owner's list.
func (t *TodoList) CreateTodo(qc QuotaContext, msg TodoMessage) *models.Todo {
	user := qc.User()

	todo := &models.Todo{
		ID:        uuid.NewString(),
		Title:     msg.Title,
		Deadline:  msg.Deadline,
		Done:      false,
		CreatedAt: TimeNow(),
	}
	user.Todos = append(user.Todos, todo)

	t.logs.Infow("todo created", "user_id", user.ID, "todo_id", todo.ID)
	return todo
}

// UpdateTodo overwrites title and deadline. Done and CreatedAt are kept.
func (t *TodoList) UpdateTodo(tc TodoContext, msg TodoMessage) *models.Todo {
	todo := tc.Todo()
	todo.Title = msg.Title
	todo.Deadline = msg.Deadline

	t.logs.Infow("todo updated", "user_id", tc.User().ID, "todo_id", todo.ID)
	return todo
}

func (t *TodoList) MarkTodoDone(tc TodoContext) *models.Todo {
	todo := tc.Todo()
	todo.Done = true

	t.logs.Infow("todo marked done", "user_id", tc.User().ID, "todo_id", todo.ID)
	return todo
}

// DeleteTodo removes the todo from its owner's list by identity.
func (t *TodoList) DeleteTodo(tc TodoContext) error {
	user := tc.User()

	idx := slices.Index(user.Todos, tc.Todo())
	if idx == -1 {
		return ErrTodoNotFound
	}
	user.Todos = slices.Delete(user.Todos, idx, idx+1)

	t.logs.Infow("todo deleted", "user_id", user.ID, "todo_id", tc.Todo().ID)
	return nil
}
