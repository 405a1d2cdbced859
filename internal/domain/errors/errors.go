package errors

import (
	"errors"
	"net/http"
	"sort"
)

// Domain errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflicts with existing data")
	ErrInvalidInput = errors.New("invalid input")
	ErrBadRequest   = errors.New("bad request")
)

// Error codes returned in non-validation error bodies
const (
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeBadRequest    = "BAD_REQUEST"
	CodeInternalError = "INTERNAL_ERROR"
)

// NonFieldErrorsKey collects messages that do not belong to a single field.
const NonFieldErrorsKey = "non_field_errors"

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrConflict)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

// FieldErrors maps a wire field name to its messages.
type FieldErrors map[string][]string

// Add appends a message for field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Has reports whether field already carries an error.
func (f FieldErrors) Has(field string) bool {
	return len(f[field]) > 0
}

// Fields returns the failing field names in stable order.
func (f FieldErrors) Fields() []string {
	out := make([]string, 0, len(f))
	for k := range f {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ValidationError is a field-keyed validation report. Batch validations
// carry one FieldErrors per input item instead, aligned with the input order.
type ValidationError struct {
	Fields FieldErrors
	Items  []FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Body returns the value rendered as the 400 response body.
func (e *ValidationError) Body() any {
	if e.Items != nil {
		return e.Items
	}
	return e.Fields
}

// NewValidationError returns nil when fields is empty so callers can
// write `if err := NewValidationError(errs); err != nil`.
func NewValidationError(fields FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// FieldError is a shorthand for a single-field validation failure.
func FieldError(field, message string) error {
	return &ValidationError{Fields: FieldErrors{field: {message}}}
}

// NewBatchValidationError returns nil when every item is valid.
func NewBatchValidationError(items []FieldErrors) error {
	failed := false
	out := make([]FieldErrors, len(items))
	for i, item := range items {
		if len(item) > 0 {
			failed = true
			out[i] = item
		} else {
			out[i] = FieldErrors{}
		}
	}
	if !failed {
		return nil
	}
	return &ValidationError{Items: out}
}

// AsValidation unwraps err into a *ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
