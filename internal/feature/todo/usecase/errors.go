// Package usecase implements the business logic for the todo feature.
package usecase

import "errors"

var (
	// ErrTodoNotFound is returned when a todo cannot be found by ID.
	ErrTodoNotFound = errors.New("todo not found")
)
