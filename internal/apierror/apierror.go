// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors. Every violated field is
// reported, not just the first one.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// Kind classifies a domain error so handlers can map it to an HTTP status
// without inspecting error strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindInsufficientStock
)

// E is a domain error produced at the service boundary. Fields is only
// populated for KindValidation.
type E struct {
	Kind   Kind
	Msg    string
	Fields map[string]string
	Err    error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *E) Unwrap() error { return e.Err }

func NotFound(msg string) *E { return &E{Kind: KindNotFound, Msg: msg} }

func Conflict(msg string) *E { return &E{Kind: KindConflict, Msg: msg} }

// Internal wraps a storage/infrastructure failure. The original error is kept
// for logging but never serialized to the client.
func Internal(err error) *E {
	return &E{Kind: KindInternal, Msg: "Error interno del servidor", Err: err}
}

func InsufficientStock(msg string) *E {
	return &E{Kind: KindInsufficientStock, Msg: msg}
}

// Validation builds a field-level validation error.
func Validation(fields map[string]string) *E {
	return &E{Kind: KindValidation, Msg: "Error de validacion", Fields: fields}
}

// Validationf is the single-field convenience form.
func Validationf(field, format string, args ...interface{}) *E {
	return Validation(map[string]string{field: fmt.Sprintf(format, args...)})
}

// KindOf extracts the Kind of err; unknown errors are internal.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// StatusOf maps a domain error to its HTTP status code.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FieldsOf returns the field map for validation errors, nil otherwise.
func FieldsOf(err error) map[string]string {
	var e *E
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
