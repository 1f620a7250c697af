package core

import (
	"time"
	"todolist/internal/storage/models"
)

type UserMessage struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type TodoMessage struct {
	Title    string    `json:"title"`
	Deadline time.Time `json:"deadline"`
}

// UserContext carries a user that was resolved from the store. Only the
// resolvers in this package build one.
type UserContext struct {
	user *models.User
}

func (c UserContext) User() *models.User {
	return c.user
}

// QuotaContext is a UserContext whose user has room for one more todo.
type QuotaContext struct {
	UserContext
}

// TodoContext carries a todo together with the user that owns it.
type TodoContext struct {
	user *models.User
	todo *models.Todo
}

func (c TodoContext) User() *models.User {
	return c.user
}

func (c TodoContext) Todo() *models.Todo {
	return c.todo
}
