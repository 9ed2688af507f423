package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindInvalidOperation
)

const (
	CodeNotFound         = "RECORD_NOT_FOUND"
	CodeConflict         = "DUPLICATE_RECORD"
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidOperation = "INVALID_OPERATION"
	CodeInternal         = "INTERNAL_ERROR"
)

// Error is a caller-facing failure. Anything that is not an *Error is
// reported as an internal failure.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]interface{}
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on kind so errors.Is(err, apperr.ErrNotFound) works for any
// NotFound error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

var (
	ErrNotFound         = &Error{Kind: KindNotFound, Code: CodeNotFound}
	ErrConflict         = &Error{Kind: KindConflict, Code: CodeConflict}
	ErrValidation       = &Error{Kind: KindValidation, Code: CodeValidation}
	ErrInvalidOperation = &Error{Kind: KindInvalidOperation, Code: CodeInvalidOperation}
)

func NotFound(resource string, id interface{}) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
		Details: map[string]interface{}{"resource": resource, "id": id},
	}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func InvalidOperation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidOperation, Code: CodeInvalidOperation, Message: fmt.Sprintf(format, args...)}
}

// KindOf unwraps err looking for an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As returns the *Error inside err, or nil.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
