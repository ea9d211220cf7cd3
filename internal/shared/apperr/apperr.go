package apperr

import (
	"errors"
	"net/http"
)

// Kind groups domain failures by how the boundary layer reports them
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindMalformedPatch
	KindInvalidSortType
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindMalformedPatch:
		return "malformed_patch"
	case KindInvalidSortType:
		return "invalid_sort_type"
	case KindConflict:
		return "conflict"
	default:
		return "unexpected"
	}
}

// Error is a typed domain failure.
// Two errors are the same failure when their codes match, so sentinels
// declared with New keep working with errors.Is after WithCause.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause returns a copy of e carrying the underlying error
func (e *Error) WithCause(err error) *Error {
	cp := *e
	cp.cause = err
	return &cp
}

// KindOf classifies err. Anything that is not an *Error is unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// As extracts the outermost *Error from err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HTTPStatus maps an error kind to a response status
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindMalformedPatch, KindInvalidSortType:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
