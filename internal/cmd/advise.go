package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskplanner/internal/advisor"
	"github.com/felixgeelhaar/taskplanner/internal/ux"
)

func newSuggestCmd() *cobra.Command {
	var taskContext string

	cmd := &cobra.Command{
		Use:   "suggest <task title>",
		Short: "Suggest ways to improve a task",
		Long: `Print up to five suggestions for making a single task more actionable.

Example:
  taskplanner suggest "Implement Core Features"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			title := strings.Join(args, " ")
			formatter, err := cmdCtx.Formatter(cmd)
			if err != nil {
				return ux.FormatError(err, "creating formatter")
			}
			return formatter.Format(ux.Suggestions{
				Task:        title,
				Suggestions: advisor.Suggest(title, taskContext),
			})
		},
	}

	cmd.Flags().StringVarP(&taskContext, "context", "c", "", "extra context about the task")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <task title>",
		Short: "Estimate the complexity of a task",
		Long: `Classify a task title into a complexity tier with an hour estimate,
required skills and likely challenges.

Example:
  taskplanner analyze "Research competitors"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			formatter, err := cmdCtx.Formatter(cmd)
			if err != nil {
				return ux.FormatError(err, "creating formatter")
			}
			return formatter.Format(advisor.Analyze(strings.Join(args, " ")))
		},
	}
}
