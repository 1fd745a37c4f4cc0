// Package apperr defines the error kinds surfaced by the API. The kind string
// is stable and is sent to clients as the "code" field of an error response.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindUnauthorized      Kind = "unauthorized"
	KindNotFound          Kind = "not_found"
	KindValidation        Kind = "validation"
	KindConflict          Kind = "conflict"
	KindExternalService   Kind = "external_service"
	KindMalformedResponse Kind = "malformed_response"
	KindInternal          Kind = "internal"
)

// Sentinels for errors.Is checks.
var (
	ErrUnauthorized      = &Error{Kind: KindUnauthorized, Msg: "unauthorized"}
	ErrNotFound          = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrValidation        = &Error{Kind: KindValidation, Msg: "validation failed"}
	ErrConflict          = &Error{Kind: KindConflict, Msg: "conflict"}
	ErrExternalService   = &Error{Kind: KindExternalService, Msg: "external service failed"}
	ErrMalformedResponse = &Error{Kind: KindMalformedResponse, Msg: "malformed external response"}
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// holds for every not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) error {
	return newf(KindUnauthorized, format, args...)
}

func NotFound(format string, args ...any) error {
	return newf(KindNotFound, format, args...)
}

func Validation(format string, args ...any) error {
	return newf(KindValidation, format, args...)
}

func Conflict(format string, args ...any) error {
	return newf(KindConflict, format, args...)
}

// External wraps a failure of a third-party collaborator (LLM, SMTP, job
// search, PDF extraction).
func External(err error, format string, args ...any) error {
	return &Error{Kind: KindExternalService, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Malformed wraps a reply from a collaborator that could not be decoded.
func Malformed(err error, format string, args ...any) error {
	return &Error{Kind: KindMalformedResponse, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf classifies err. Anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-facing message of err, i.e. the message of the
// outermost *Error in its chain.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Msg != "" {
			return e.Msg
		}
		return e.Error()
	}
	return err.Error()
}
