package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrStoreNil  = errors.New("store is nil")
	ErrInvalidID = errors.New("invalid id")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

func invalid(field, value string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("has invalid value %q", value)}
}

// ConnectivityError wraps a store failure other than a missing record.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s: store unavailable: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
