package ux

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions.
// Coded errors already carry their own suggestions and are returned as is.
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Code(err) != "" {
		return err
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "no such file or directory") {
		if strings.Contains(errMsg, "config.yaml") {
			return NewErrorWithSuggestion(err,
				"Create a configuration file with 'taskplanner config init'")
		}
		if strings.Contains(errMsg, ".json") || strings.Contains(errMsg, ".yaml") || strings.Contains(errMsg, ".yml") {
			return NewErrorWithSuggestion(err,
				"Generate a breakdown with 'taskplanner plan \"<goal>\" --out <file>'")
		}
	}

	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check file permissions and ensure you have access to the required files/directories")
	}

	if strings.Contains(errMsg, "unknown format") {
		return NewErrorWithSuggestion(err,
			"Use --format text, --format json, or --format yaml")
	}

	if strings.Contains(errMsg, "failed to") {
		return NewErrorWithSuggestion(err,
			fmt.Sprintf("Next steps: %s", SuggestNextSteps()))
	}

	return err
}

// FormatError provides consistent error formatting with context
func FormatError(err error, context string) error {
	if err == nil {
		return nil
	}

	enhanced := EnhanceError(err)
	if context != "" {
		return fmt.Errorf("%s: %w", context, enhanced)
	}
	return enhanced
}
