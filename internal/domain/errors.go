package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Anything that does not match one of these is a service error.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrBadInput        = errors.New("bad input")
	ErrNotFound        = errors.New("not found")
)

var (
	ErrVitalsNotFound     = &Error{Kind: ErrNotFound, Msg: "Vital not found or access denied"}
	ErrDocumentNotFound   = &Error{Kind: ErrNotFound, Msg: "Document not found or access denied"}
	ErrFileTypeNotAllowed = &Error{Kind: ErrBadInput, Msg: "Only PDF and TXT files are allowed"}
	ErrEmptyMessage       = &Error{Kind: ErrBadInput, Msg: "Message must not be empty"}
)

// Error is a classified error whose message is safe to return to the caller.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func BadInput(format string, args ...any) error {
	return &Error{Kind: ErrBadInput, Msg: fmt.Sprintf(format, args...)}
}

func Unauthenticated(format string, args ...any) error {
	return &Error{Kind: ErrUnauthenticated, Msg: fmt.Sprintf(format, args...)}
}
