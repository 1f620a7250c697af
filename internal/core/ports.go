package core

import "todolist/internal/storage/models"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	AddUser(user *models.User)
	UserByUsername(username string) (*models.User, error)
	UserByID(id string) (*models.User, error)
	UsernameExists(username string) bool
}
