package payload

import (
	"errors"
	"fmt"
	"time"
	"todolist/internal/core"

	"github.com/jellydator/validation"
)

// deadlineLayouts lists the accepted deadline formats, tried in order.
var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

var errInvalidDeadline = errors.New("must be an RFC 3339 timestamp or a YYYY-MM-DD date")

type TodoRequest struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
}

func (t TodoRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required),
		validation.Field(&t.Deadline, validation.Required, validation.By(validDeadline)),
	)
}

func (t TodoRequest) ToCoreTodoMessage() (core.TodoMessage, error) {
	deadline, err := ParseDeadline(t.Deadline)
	if err != nil {
		return core.TodoMessage{}, fmt.Errorf("parse deadline: %w", err)
	}

	return core.TodoMessage{
		Title:    t.Title,
		Deadline: deadline,
	}, nil
}

// ParseDeadline accepts full timestamps as well as bare dates. Values without
// a zone are read as UTC.
func ParseDeadline(value string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		deadline, err := time.Parse(layout, value)
		if err == nil {
			return deadline, nil
		}
	}
	return time.Time{}, errInvalidDeadline
}

func validDeadline(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := ParseDeadline(s)
	return err
}
