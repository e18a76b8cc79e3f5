package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("forbidden")
	ErrUpstream           = errors.New("upstream request failed")

	ErrUsernameTaken = fmt.Errorf("username already exists: %w", ErrConflict)

	ErrMoodNotFound   = &NotFoundError{Resource: "Mood"}
	ErrRecipeNotFound = &NotFoundError{Resource: "Recipe"}
	ErrUserNotFound   = &NotFoundError{Resource: "User"}
)

// NotFoundError names the resource that did not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError is returned when caller input is missing or out of range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
