package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Goal errors (GOAL-001 to GOAL-099)
	ErrCodeGoalEmpty ErrorCode = "GOAL-001"

	// Timeline errors (TIMELINE-001 to TIMELINE-099)
	ErrCodeTimelineInvalid ErrorCode = "TIMELINE-001"

	// Plan errors (PLAN-001 to PLAN-099)
	ErrCodePlanNotFound            ErrorCode = "PLAN-001"
	ErrCodePlanInvalid             ErrorCode = "PLAN-002"
	ErrCodePlanFingerprintMismatch ErrorCode = "PLAN-003"
	ErrCodePlanCyclicDep           ErrorCode = "PLAN-004"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
	ErrCodeFileUnmarshal   ErrorCode = "IO-005"
	ErrCodeFileMarshal     ErrorCode = "IO-006"
)

// PlannerError represents an enhanced error with code, suggestions, and documentation
type PlannerError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *PlannerError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PlannerError) Unwrap() error {
	return e.Cause
}

// New creates a new PlannerError
func New(code ErrorCode, message string) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PlannerError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PlannerError) WithSuggestion(suggestion string) *PlannerError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PlannerError) WithSuggestions(suggestions ...string) *PlannerError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *PlannerError) WithDocs(url string) *PlannerError {
	e.DocsURL = url
	return e
}

// Code returns the error code of err if it is a PlannerError, or "" otherwise.
func Code(err error) ErrorCode {
	for err != nil {
		if pe, ok := err.(*PlannerError); ok {
			return pe.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}

// Common error constructors for frequently used errors

// NewGoalEmptyError creates an error for a blank goal description
func NewGoalEmptyError() *PlannerError {
	return New(ErrCodeGoalEmpty, "goal description is required").
		WithSuggestion("Pass the goal as an argument, e.g. taskplanner plan \"Launch a mobile app\"").
		WithSuggestion("Run interactively to be prompted for the goal")
}

// NewTimelineInvalidError creates an error for a timeline that cannot be scaled against
func NewTimelineInvalidError(weeks int) *PlannerError {
	return New(ErrCodeTimelineInvalid, fmt.Sprintf("timeline must be a positive number of weeks, got %d", weeks)).
		WithSuggestion("Use --weeks with a value of 1 or more").
		WithSuggestion("Omit --weeks to keep catalog durations")
}

// NewPlanInvalidError creates a breakdown validation error
func NewPlanInvalidError(details string) *PlannerError {
	return New(ErrCodePlanInvalid, fmt.Sprintf("invalid breakdown: %s", details)).
		WithSuggestion("Regenerate the breakdown with 'taskplanner plan'").
		WithSuggestion("Run 'taskplanner validate <file>' to see validation errors")
}

// NewPlanFingerprintMismatchError creates an error for a breakdown edited after it was saved
func NewPlanFingerprintMismatchError(path, expected, actual string) *PlannerError {
	return New(ErrCodePlanFingerprintMismatch, fmt.Sprintf("breakdown fingerprint mismatch: %s", path)).
		WithSuggestion("The file was modified after it was generated").
		WithSuggestion("Regenerate the breakdown with 'taskplanner plan --out'").
		WithSuggestion(fmt.Sprintf("Expected fingerprint: %s, got: %s", expected, actual))
}

// NewConfigInvalidError wraps configuration validation failures
func NewConfigInvalidError(path string, cause error) *PlannerError {
	return Wrap(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", path), cause).
		WithSuggestion("Run 'taskplanner config view' to inspect the effective configuration").
		WithSuggestion("Delete the file to fall back to defaults")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *PlannerError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *PlannerError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
