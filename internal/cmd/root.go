package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the taskplanner command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskplanner",
		Short: "Break goals down into ordered, estimated tasks",
		Long: `taskplanner turns a free-text goal into a task breakdown: an ordered list of
tasks with descriptions, priorities, hour estimates, due-date offsets and
dependencies, plus an overall duration estimate and a short rationale.

The breakdown is deterministic: the same goal, timeline and context always
produce the same plan.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default is ./.taskplanner/config.yaml or $HOME/.taskplanner/config.yaml)")
	pf.String("format", "text", "output format: text, json, or yaml")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("log-level", "warn", "log level: debug, info, warn, or error")
	pf.String("log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newPlanCmd(),
		newSuggestCmd(),
		newAnalyzeCmd(),
		newValidateCmd(),
		newCatalogCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt by the caller.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
