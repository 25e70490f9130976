package workout

import (
	"errors"
	"fmt"
)

// ErrorKind classifies parse and validation failures for callers.
type ErrorKind string

const (
	ErrMissingField      ErrorKind = "missing_field"
	ErrUnrecognizedValue ErrorKind = "unrecognized_value"
	ErrInvalidGoal       ErrorKind = "invalid_goal"
	ErrInvalidTarget     ErrorKind = "invalid_target"
	ErrInvalidAlert      ErrorKind = "invalid_alert"
	ErrValidation        ErrorKind = "validation"
	ErrUnavailable       ErrorKind = "unavailable"
)

// ParseError is the single error type the pipeline returns. Parsing is
// fail-fast: the first failure aborts the whole parse, so a ParseError
// always describes exactly one problem.
type ParseError struct {
	Kind   ErrorKind
	Field  string
	Detail string
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Detail)
	}
	return e.Detail
}

// KindOf returns the ErrorKind carried by err, or empty if err is not a
// ParseError.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func missingField(field string) *ParseError {
	return &ParseError{Kind: ErrMissingField, Field: field, Detail: "required field is missing"}
}

func unrecognizedValue(field, input string) *ParseError {
	return &ParseError{Kind: ErrUnrecognizedValue, Field: field, Detail: fmt.Sprintf("unrecognized value %q", input)}
}

func invalidGoal(field, detail string) *ParseError {
	return &ParseError{Kind: ErrInvalidGoal, Field: field, Detail: detail}
}

func invalidTarget(field, detail string) *ParseError {
	return &ParseError{Kind: ErrInvalidTarget, Field: field, Detail: detail}
}

func invalidAlert(field, detail string) *ParseError {
	return &ParseError{Kind: ErrInvalidAlert, Field: field, Detail: detail}
}

func validationError(detail string) *ParseError {
	return &ParseError{Kind: ErrValidation, Detail: detail}
}

func unavailable(detail string) *ParseError {
	return &ParseError{Kind: ErrUnavailable, Detail: detail}
}
