package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskplanner/internal/plan"
	"github.com/felixgeelhaar/taskplanner/internal/ux"
)

// validateReport is the structured result of the validate command.
type validateReport struct {
	Path        string `json:"path" yaml:"path"`
	Valid       bool   `json:"valid" yaml:"valid"`
	Tasks       int    `json:"tasks" yaml:"tasks"`
	Days        int    `json:"estimated_duration_days" yaml:"estimated_duration_days"`
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Fallback    bool   `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

func (r validateReport) String() string {
	fp := "no fingerprint"
	if r.Fingerprint != "" {
		fp = "fingerprint verified"
	}
	return fmt.Sprintf("✓ %s: %d tasks, %d days, %s", r.Path, r.Tasks, r.Days, fp)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a saved breakdown",
		Long: `Load a breakdown saved with 'taskplanner plan --out' and check it: every
task needs a title, a valid priority and a positive estimate, dependencies
must point at earlier tasks, and a stored fingerprint must match the
content.

Example:
  taskplanner validate .taskplanner/plans/launch-a-mobile-app.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			if err := ux.ValidateRequiredFile(path, "breakdown file", "taskplanner plan \"<goal>\" --out "+path); err != nil {
				return err
			}

			b, err := plan.LoadBreakdown(path)
			if err != nil {
				cmdCtx.Logger.WithError(err).Debug("breakdown failed validation", "path", path)
				return err
			}

			formatter, err := cmdCtx.Formatter(cmd)
			if err != nil {
				return ux.FormatError(err, "creating formatter")
			}
			return formatter.Format(validateReport{
				Path:        path,
				Valid:       true,
				Tasks:       len(b.Tasks),
				Days:        b.EstimatedDurationDays,
				Fingerprint: b.Fingerprint,
				Fallback:    b.Fallback,
			})
		},
	}
}
