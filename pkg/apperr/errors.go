package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies service-level failures so handlers can map them to
// HTTP status codes without matching on message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAccessDenied
	KindNotFound
	KindDuplicate
	KindAccountLocked
	KindInvalidCredentials
	KindAuthToken
)

type Error struct {
	Kind    Kind
	Message string

	// Field and Value are set only for KindDuplicate
	Field string
	Value string

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func AccessDenied() *Error {
	return &Error{Kind: KindAccessDenied, Message: "Access denied."}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Duplicate(field, value string) *Error {
	return &Error{
		Kind:    KindDuplicate,
		Message: fmt.Sprintf("The input field %q, with the value %q, already exist.", field, value),
		Field:   field,
		Value:   value,
	}
}

func AccountLocked() *Error {
	return &Error{Kind: KindAccountLocked, Message: "The account is locked. Try again later."}
}

func InvalidCredentials(message string) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: message}
}

func AuthToken(message string) *Error {
	return &Error{Kind: KindAuthToken, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong.", Err: err}
}

// KindOf extracts the classification of err; unclassified errors
// report KindInternal so no detail leaks outward.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// As is a convenience wrapper around errors.As for *Error.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
