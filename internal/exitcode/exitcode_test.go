package exitcode

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", Success, 0},
		{"GeneralError", GeneralError, 1},
		{"UsageError", UsageError, 2},
		{"InvalidBreakdown", InvalidBreakdown, 3},
		{"FingerprintMismatch", FingerprintMismatch, 4},
		{"ConfigError", ConfigError, 5},
		{"IOError", IOError, 6},
		{"Rejected", Rejected, 7},
		{"Interrupted", Interrupted, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("Exit code %s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error returns success", nil, Success},
		{"blank goal", errors.NewGoalEmptyError(), UsageError},
		{"bad timeline", errors.NewTimelineInvalidError(-1), UsageError},
		{"invalid breakdown", errors.NewPlanInvalidError("no tasks"), InvalidBreakdown},
		{"cyclic dependency", errors.New(errors.ErrCodePlanCyclicDep, "cycle"), InvalidBreakdown},
		{"fingerprint mismatch", errors.NewPlanFingerprintMismatchError("p.json", "a", "b"), FingerprintMismatch},
		{"config", errors.NewConfigInvalidError("c.yaml", stderrors.New("bad")), ConfigError},
		{"file not found", errors.NewFileNotFoundError("p.json"), IOError},
		{"wrapped coded error", fmt.Errorf("validate: %w", errors.NewFileNotFoundError("p.json")), IOError},
		{"rejected", stderrors.New("breakdown rejected: too long"), Rejected},
		{"unknown flag", stderrors.New("unknown flag: --wat"), UsageError},
		{"arg count", stderrors.New("accepts 1 arg(s), received 2"), UsageError},
		{"unknown format", stderrors.New("unknown format: xml"), UsageError},
		{"permission", stderrors.New("open x: permission denied"), IOError},
		{"anything else", stderrors.New("boom"), GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.expected {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestGetExitCodeDescription(t *testing.T) {
	for code := Success; code <= Rejected; code++ {
		if desc := GetExitCodeDescription(code); desc == "Unknown error" {
			t.Errorf("code %d has no description", code)
		}
	}
	if got := GetExitCodeDescription(Interrupted); got != "Interrupted" {
		t.Errorf("GetExitCodeDescription(Interrupted) = %q", got)
	}
	if got := GetExitCodeDescription(99); got != "Unknown error" {
		t.Errorf("GetExitCodeDescription(99) = %q", got)
	}
}
