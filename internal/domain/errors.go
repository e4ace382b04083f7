package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyText    = errors.New("task text cannot be empty")
)
