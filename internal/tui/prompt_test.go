package tui

import (
	"testing"

	"github.com/felixgeelhaar/taskplanner/internal/plan"
)

func clearCI(t *testing.T) {
	t.Helper()
	for _, v := range ciEnvVars {
		t.Setenv(v, "")
	}
}

func TestInCI(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		want   bool
	}{
		{"no CI environment", "", false},
		{"GitHub Actions", "GITHUB_ACTIONS", true},
		{"GitLab CI", "GITLAB_CI", true},
		{"Jenkins", "JENKINS_URL", true},
		{"Generic CI", "CI", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCI(t)
			if tt.envVar != "" {
				t.Setenv(tt.envVar, "true")
			}

			if got := InCI(); got != tt.want {
				t.Errorf("InCI() = %v, want %v", got, tt.want)
			}
			if tt.want && ShouldPrompt() {
				t.Error("ShouldPrompt() should be false in CI")
			}
		})
	}
}

func TestParseWeeks(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"3", 3, false},
		{" 12 ", 12, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"three", 0, true},
	}

	for _, tt := range tests {
		got, err := parseWeeks(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseWeeks(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseWeeks(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidateGoal(t *testing.T) {
	if validateGoal("  ") == nil {
		t.Error("validateGoal() should reject blank input")
	}
	if err := validateGoal("Learn Go"); err != nil {
		t.Errorf("validateGoal() error = %v", err)
	}
}

func TestPromptForRequest_NothingMissing(t *testing.T) {
	req := plan.Request{Goal: "Learn Go", TimelineWeeks: 2, Context: "evenings only"}

	got, err := PromptForRequest(req)
	if err != nil {
		t.Fatalf("PromptForRequest() error = %v", err)
	}
	if got != req {
		t.Errorf("PromptForRequest() = %+v, want %+v", got, req)
	}
}
