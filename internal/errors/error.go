package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategorySubmission Category = "submission"
	CategoryInvariant  Category = "invariant"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// PardnaError is a structured error with a code, suggestion and documentation.
type PardnaError struct {
	// Code is a unique error identifier (e.g., "P200").
	Code string

	// Category is the error type (validation, submission, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *PardnaError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *PardnaError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *PardnaError) WithSuggestion(s string) *PardnaError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *PardnaError) WithDetail(d string) *PardnaError {
	e.Detail = d
	return e
}

// WithMessage replaces the registered short message.
func (e *PardnaError) WithMessage(format string, args ...any) *PardnaError {
	e.Message = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *PardnaError) Wrap(err error) *PardnaError {
	e.Wrapped = err
	return e
}

// New creates a PardnaError from a registered error code.
func New(code string) *PardnaError {
	template, ok := registry[code]
	if !ok {
		return &PardnaError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &PardnaError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new PardnaError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *PardnaError {
	return &PardnaError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a PardnaError.
func FromError(err error, code string) *PardnaError {
	if err == nil {
		return nil
	}
	var pe *PardnaError
	if stderrors.As(err, &pe) {
		return pe
	}
	return New(code).Wrap(err)
}

// Is reports whether any error in err's chain is a PardnaError with the given code.
func Is(err error, code string) bool {
	for err != nil {
		if pe, ok := err.(*PardnaError); ok && pe.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// CategoryOf returns the category of the first PardnaError in err's chain.
func CategoryOf(err error) Category {
	var pe *PardnaError
	if stderrors.As(err, &pe) {
		return pe.Category
	}
	return ""
}
