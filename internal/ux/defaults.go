package ux

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ProjectDirName is the per-project directory holding saved breakdowns and
// an optional project-level config file.
const ProjectDirName = ".taskplanner"

// PathDefaults provides smart defaults for common file paths
type PathDefaults struct {
	ProjectDir string
}

// NewPathDefaults creates a new PathDefaults rooted at ./.taskplanner
func NewPathDefaults() *PathDefaults {
	return &PathDefaults{
		ProjectDir: ProjectDirName,
	}
}

// PlansDir returns the directory where breakdowns are saved by default
func (pd *PathDefaults) PlansDir() string {
	return filepath.Join(pd.ProjectDir, "plans")
}

// PlanFile returns the default path for a breakdown of goal. format picks
// the extension; anything but yaml yields JSON.
func (pd *PathDefaults) PlanFile(goal, format string) string {
	ext := ".json"
	if format == "yaml" {
		ext = ".yaml"
	}
	return filepath.Join(pd.PlansDir(), Slug(goal)+ext)
}

// ConfigFile returns the project-level config path
func (pd *PathDefaults) ConfigFile() string {
	return filepath.Join(pd.ProjectDir, "config.yaml")
}

// Slug turns a goal into a lower-case file name stem.
func Slug(goal string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(goal) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimRight(sb.String(), "-")
	if len(slug) > 60 {
		slug = strings.TrimRight(slug[:60], "-")
	}
	if slug == "" {
		return "breakdown"
	}
	return slug
}

// ValidateRequiredFile checks if a required file exists and provides helpful error
func ValidateRequiredFile(path string, fileType string, creationCommand string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s not found at: %s\n\nRun '%s' to create it", fileType, path, creationCommand)
	} else if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	return nil
}

// SuggestNextSteps provides contextual next steps based on what exists
func SuggestNextSteps() string {
	defaults := NewPathDefaults()

	if _, err := os.Stat(defaults.PlansDir()); os.IsNotExist(err) {
		return "Generate a breakdown with 'taskplanner plan \"<goal>\" --save'"
	}

	return "Check a saved breakdown with 'taskplanner validate <file>'"
}
