package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/felixgeelhaar/taskplanner/internal/plan"
)

// PromptForRequest asks for the fields of req that are still empty. The
// goal is required; weeks and context may be left blank.
func PromptForRequest(req plan.Request) (plan.Request, error) {
	weeks := ""
	if req.TimelineWeeks > 0 {
		weeks = strconv.Itoa(req.TimelineWeeks)
	}

	var fields []huh.Field
	if strings.TrimSpace(req.Goal) == "" {
		fields = append(fields, huh.NewInput().
			Title("What do you want to achieve?").
			Placeholder("Launch a mobile app in 3 weeks").
			Value(&req.Goal).
			Validate(validateGoal))
	}
	if req.TimelineWeeks == 0 {
		fields = append(fields, huh.NewInput().
			Title("Timeline in weeks").
			Description("Leave blank for no deadline").
			Value(&weeks).
			Validate(validateWeeks))
	}
	if req.Context == "" {
		fields = append(fields, huh.NewText().
			Title("Anything else worth knowing?").
			Description("Optional context such as constraints or priorities").
			Value(&req.Context))
	}

	if len(fields) == 0 {
		return req, nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return req, fmt.Errorf("prompt failed: %w", err)
	}

	n, err := parseWeeks(weeks)
	if err != nil {
		return req, err
	}
	req.TimelineWeeks = n
	return req, nil
}

func validateGoal(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a goal is required")
	}
	return nil
}

func validateWeeks(s string) error {
	_, err := parseWeeks(s)
	return err
}

func parseWeeks(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("enter a whole number of weeks, at least 1")
	}
	return n, nil
}

// PromptForConfirmation displays a yes/no confirmation prompt
func PromptForConfirmation(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(confirm))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var ciEnvVars = []string{
	"CI",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"TRAVIS",
	"CIRCLECI",
	"BUILDKITE",
}

// InCI reports whether a common CI environment variable is set.
func InCI() bool {
	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return true
		}
	}
	return false
}

// ShouldPrompt returns true if prompts should be shown based on environment
// Prompts are disabled in CI environments or when stdin is not a terminal
func ShouldPrompt() bool {
	return !InCI() && IsInteractive()
}
