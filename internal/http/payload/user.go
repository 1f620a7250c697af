package payload

import (
	"todolist/internal/core"

	"github.com/jellydator/validation"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (c CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Username, validation.Required),
	)
}

func (c CreateUserRequest) ToCoreUserMessage() core.UserMessage {
	return core.UserMessage{
		Name:     c.Name,
		Username: c.Username,
	}
}
