package services

import (
	"fmt"

	"github.com/AlexMaina05/Comande/entity"
)

// The four recoverable error kinds of the domain. Controllers translate them
// to HTTP statuses (400, 404, 409); anything else is a server error.

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

type InvalidTransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from '%s' to '%s': order is closed", e.From, e.To)
}
