package storage

import (
	"errors"
	"todolist/internal/storage/models"
)

var ErrUserNotFound error = errors.New("user not found")

// MemoryStore keeps every user in process memory. It is not safe for
// concurrent use; callers serialize access.
type MemoryStore struct {
	users []*models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: []*models.User{},
	}
}

func (s *MemoryStore) AddUser(user *models.User) {
	s.users = append(s.users, user)
}

func (s *MemoryStore) UserByUsername(username string) (*models.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) UserByID(id string) (*models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) UsernameExists(username string) bool {
	_, err := s.UserByUsername(username)
	return err == nil
}

// Users returns a copy of the user list in insertion order.
func (s *MemoryStore) Users() []*models.User {
	users := make([]*models.User, len(s.users))
	copy(users, s.users)
	return users
}
