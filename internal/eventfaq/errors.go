package eventfaq

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
)

// Error carries a user facing message and one of the sentinel errors above.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }
