package leis

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("leis error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var m *MissingFieldError
	if errors.As(err, &m) {
		return ENOTFOUND
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var m *MissingFieldError
	if errors.As(err, &m) {
		return m.Error()
	}
	return "Internal error"
}

// Sentinels matched by MissingFieldError through errors.Is.
var (
	ErrTitleNotFound   = errors.New("title not found")
	ErrSummaryNotFound = errors.New("summary not found")
	ErrBodyNotFound    = errors.New("body not found")
)

// MissingFieldError reports that a mandatory template fragment was not
// present in a document.
type MissingFieldError struct {
	Field  Field
	Source string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s not found in file %s", e.Field, e.Source)
}

// Is reports whether target is the sentinel for the missing field.
func (e *MissingFieldError) Is(target error) bool {
	switch e.Field {
	case FieldTitle:
		return target == ErrTitleNotFound
	case FieldSummary:
		return target == ErrSummaryNotFound
	case FieldBody:
		return target == ErrBodyNotFound
	}
	return false
}
