package utils

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindValidation   ErrorKind = "VALIDATION_ERROR"
	KindConflict     ErrorKind = "CONFLICT"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindInternal     ErrorKind = "INTERNAL"
)

// AppError is the structured error every service returns. Two AppErrors match
// under errors.Is when their kinds are equal, so callers compare against the
// sentinels below.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNotFound           = &AppError{Kind: KindNotFound, Message: "not found"}
	ErrValidation         = &AppError{Kind: KindValidation, Message: "validation failed"}
	ErrConflict           = &AppError{Kind: KindConflict, Message: "conflict"}
	ErrForbidden          = &AppError{Kind: KindForbidden, Message: "Forbidden: insufficient permissions"}
	ErrUnauthorized       = &AppError{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrDatabaseError      = &AppError{Kind: KindInternal, Message: "database error"}
	ErrInvalidCredentials = &AppError{Kind: KindUnauthorized, Message: "invalid email or password"}
)

func NotFound(format string, args ...any) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an infrastructure failure. The message shown to clients
// stays generic; the cause is kept for logs.
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal server error", Err: err}
}

// KindOf reports the kind of err, falling back to KindInternal for errors
// that are not AppErrors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
