package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/taskbridge/taskbridge/internal/queue"
)

// ErrBrokerNotConfigured is returned when a submission arrives while the
// broker connection URL is absent from the process configuration.
var ErrBrokerNotConfigured = errors.New("broker connection URL is not configured")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error kind. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Broker/transport failures
	case errors.Is(err, queue.ErrBroker):
		return http.StatusBadGateway

	// Configuration errors
	case errors.Is(err, ErrBrokerNotConfigured):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error kind. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, queue.ErrBroker):
		return "Message queue service unavailable"

	case errors.Is(err, ErrBrokerNotConfigured):
		return "Server configuration error"

	default:
		return "Internal server error"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'Task.Email' Error:Field validation for 'Email' failed on the 'email' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
