package errors

import (
	"fmt"
)

// ParseError represents a theme document parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExpressionError reports a chain expression that could not be compiled.
// Column is the 1-based offset of the offending segment.
type ExpressionError struct {
	Expr    string
	Column  int
	Message string
}

// NewExpressionError constructs an ExpressionError.
func NewExpressionError(expr string, column int, message string) error {
	return &ExpressionError{Expr: expr, Column: column, Message: message}
}

func (e *ExpressionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Column > 0 {
		return fmt.Sprintf("expression error: %q:%d: %s", e.Expr, e.Column, e.Message)
	}
	return fmt.Sprintf("expression error: %q: %s", e.Expr, e.Message)
}
