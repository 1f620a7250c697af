package core

import (
	"errors"
	"fmt"
	"todolist/internal/storage"

	"github.com/google/uuid"
)

// ResolveUser looks the user up by the username taken from request metadata.
func (t *TodoList) ResolveUser(username string) (UserContext, error) {
	user, err := t.store.UserByUsername(username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return UserContext{}, ErrUserNotFound
		}
		return UserContext{}, fmt.Errorf("get user by username: %w", err)
	}

	return UserContext{user: user}, nil
}

// ResolveUserByID looks the user up by the id taken from the request path.
func (t *TodoList) ResolveUserByID(id string) (UserContext, error) {
	user, err := t.store.UserByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return UserContext{}, ErrUserNotFound
		}
		return UserContext{}, fmt.Errorf("get user by id: %w", err)
	}

	return UserContext{user: user}, nil
}

// CheckQuota lets pro users through unconditionally and free users only while
// one more todo keeps them within the free plan limit.
func (t *TodoList) CheckQuota(uc UserContext) (QuotaContext, error) {
	user := uc.User()
	if user.Pro || len(user.Todos)+1 <= t.freeLimit {
		return QuotaContext{UserContext: uc}, nil
	}

	t.logs.Infow("free plan todo limit reached",
		"user_id", user.ID,
		"todos", len(user.Todos),
		"limit", t.freeLimit)
	return QuotaContext{}, ErrQuotaExceeded
}

// ResolveTodo resolves the owner by username on its own, then checks that
// todoID is a well formed uuid belonging to one of the owner's todos.
func (t *TodoList) ResolveTodo(username, todoID string) (TodoContext, error) {
	uc, err := t.ResolveUser(username)
	if err != nil {
		return TodoContext{}, err
	}

	if err := validTodoID(todoID); err != nil {
		return TodoContext{}, fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
	}

	user := uc.User()
	for _, todo := range user.Todos {
		if todo.ID == todoID {
			return TodoContext{user: user, todo: todo}, nil
		}
	}

	return TodoContext{}, ErrTodoNotFound
}

// validTodoID accepts only the canonical hyphenated form of an RFC 4122
// uuid with version 1 to 5, or the nil uuid.
func validTodoID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	if len(id) != 36 {
		return errors.New("uuid must be in the canonical hyphenated form")
	}
	if parsed == uuid.Nil {
		return nil
	}
	if parsed.Variant() != uuid.RFC4122 {
		return fmt.Errorf("unsupported uuid variant %s", parsed.Variant())
	}
	if v := parsed.Version(); v < 1 || v > 5 {
		return fmt.Errorf("unsupported uuid version %d", v)
	}
	return nil
}
