package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryRuntime    Category = "runtime"
	CategoryProtocol   Category = "protocol"
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// BindError is a structured error with a stable code, a category,
// and optional fix guidance.
type BindError struct {
	// Code is a unique error identifier (e.g., "E301").
	Code string

	// Category is the error type (runtime, protocol, etc.).
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
func (e *BindError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *BindError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *BindError) WithSuggestion(s string) *BindError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *BindError) WithDetail(d string) *BindError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *BindError) Wrap(err error) *BindError {
	e.Wrapped = err
	return e
}

// New creates a BindError from a registered error code.
func New(code string) *BindError {
	template, ok := registry[code]
	if !ok {
		return &BindError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &BindError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new BindError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *BindError {
	return &BindError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a BindError.
func FromError(err error, code string) *BindError {
	if err == nil {
		return nil
	}
	if be, ok := err.(*BindError); ok {
		return be
	}
	return New(code).Wrap(err)
}

// IsCode reports whether err is (or wraps) a BindError with the given code.
func IsCode(err error, code string) bool {
	for err != nil {
		be, ok := err.(*BindError)
		if ok && be.Code == code {
			return true
		}
		u, uok := err.(interface{ Unwrap() error })
		if !uok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
