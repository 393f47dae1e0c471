package cmd

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

// ErrorWithSuggestion wraps an error with actionable recovery suggestions
type ErrorWithSuggestion struct {
	Message     string
	Suggestions []string
	err         error
}

func (e *ErrorWithSuggestion) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, s := range e.Suggestions {
			b.WriteString("\n  • ")
			b.WriteString(s)
		}
	}

	if e.err != nil {
		b.WriteString("\n\nDetails: ")
		b.WriteString(e.err.Error())
	}

	return b.String()
}

func (e *ErrorWithSuggestion) Unwrap() error {
	return e.err
}

// NewErrorWithSuggestions creates an error with recovery suggestions
func NewErrorWithSuggestions(msg string, err error, suggestions ...string) error {
	return &ErrorWithSuggestion{
		Message:     msg,
		Suggestions: suggestions,
		err:         err,
	}
}

// ReviewRejectedError reports a breakdown rejected in interactive review.
func ReviewRejectedError(reason string) error {
	if reason == "" {
		reason = "no reason given"
	}
	return NewErrorWithSuggestions(
		fmt.Sprintf("breakdown rejected: %s", reason),
		nil,
		"Refine the goal or add --context with constraints, then run 'taskplanner plan' again",
		"Adjust the timeline with --weeks",
	)
}

// MissingGoalError reports that no goal was given and prompting is off.
func MissingGoalError() error {
	return NewErrorWithSuggestions(
		"a goal is required",
		errors.NewGoalEmptyError(),
		"Pass the goal as arguments: taskplanner plan \"Launch a mobile app in 3 weeks\"",
		"Run in an interactive terminal to be prompted for it",
	)
}
