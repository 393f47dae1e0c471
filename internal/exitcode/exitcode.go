package exitcode

import (
	"os"
	"strings"

	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, blank goal, bad timeline)
	UsageError = 2

	// InvalidBreakdown indicates a saved breakdown failed validation
	InvalidBreakdown = 3

	// FingerprintMismatch indicates a saved breakdown was changed after it was written
	FingerprintMismatch = 4

	// ConfigError indicates an unreadable or invalid configuration file
	ConfigError = 5

	// IOError indicates a file could not be read or written
	IOError = 6

	// Rejected indicates the breakdown was rejected during interactive review
	Rejected = 7

	// Interrupted indicates the user cancelled with Ctrl+C (128 + SIGINT)
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps coded errors by their code and falls back to
// message matching for errors raised by cobra and the standard library.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	code := errors.Code(err)
	switch {
	case code == errors.ErrCodeGoalEmpty, code == errors.ErrCodeTimelineInvalid:
		return UsageError
	case code == errors.ErrCodePlanFingerprintMismatch:
		return FingerprintMismatch
	case strings.HasPrefix(string(code), "PLAN-"):
		return InvalidBreakdown
	case code == errors.ErrCodeConfigInvalid:
		return ConfigError
	case strings.HasPrefix(string(code), "IO-"):
		return IOError
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "breakdown rejected") {
		return Rejected
	}

	if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "invalid argument") ||
		strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "unknown shorthand flag") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "accepts ") ||
		strings.Contains(errMsg, "requires at least") || strings.Contains(errMsg, "unknown format") {
		return UsageError
	}

	if strings.Contains(errMsg, "permission denied") || strings.Contains(errMsg, "no such file") {
		return IOError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case InvalidBreakdown:
		return "Invalid breakdown"
	case FingerprintMismatch:
		return "Breakdown fingerprint mismatch"
	case ConfigError:
		return "Configuration error"
	case IOError:
		return "File error"
	case Rejected:
		return "Breakdown rejected in review"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
