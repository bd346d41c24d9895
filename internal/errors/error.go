package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryUsage    Category = "usage"
	CategoryConfig   Category = "config"
	CategoryProtocol Category = "protocol"
	CategoryPublish  Category = "publish"
	CategoryCLI      Category = "cli"
)

// UIError is a structured error with a code, suggestion and documentation link.
type UIError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (usage, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *UIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *UIError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *UIError) WithSuggestion(s string) *UIError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *UIError) WithExample(ex string) *UIError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *UIError) WithDetail(d string) *UIError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *UIError) Wrap(err error) *UIError {
	e.Wrapped = err
	return e
}

// New creates a UIError from a registered error code.
func New(code string) *UIError {
	template, ok := Lookup(code)
	if !ok {
		return &UIError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &UIError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new UIError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *UIError {
	return &UIError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a UIError.
func FromError(err error, code string) *UIError {
	if err == nil {
		return nil
	}
	var ue *UIError
	if stderrors.As(err, &ue) {
		return ue
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is, or wraps, a UIError with the given code.
func HasCode(err error, code string) bool {
	for err != nil {
		if ue, ok := err.(*UIError); ok && ue.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}
