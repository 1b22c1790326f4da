// Package domain contains the core entities of the task gateway.
package domain

import (
	"github.com/go-playground/validator/v10"
)

// Shared validator instance for entity validation
var validate = validator.New()

// Task is the unit of work submitted by clients and forwarded to the message
// broker. It is created transiently per request, serialized to JSON for the
// queue, and never persisted by this service.
type Task struct {
	// Keyword is the search term the downstream worker will process.
	Keyword string `json:"keyword" validate:"required,max=100"`

	// Email is the address notified when the task completes.
	Email string `json:"email" validate:"required,email"`
}

// Validate checks the task against the submission rules: keyword present and
// at most 100 characters, email syntactically valid.
func (t *Task) Validate() error {
	return validate.Struct(t)
}
