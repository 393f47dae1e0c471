package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskplanner/internal/plan"
	"github.com/felixgeelhaar/taskplanner/internal/tui"
	"github.com/felixgeelhaar/taskplanner/internal/ux"
)

type planOptions struct {
	weeks    int
	context  string
	out      string
	save     bool
	review   bool
	noPrompt bool
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan [goal]",
		Short: "Generate a task breakdown for a goal",
		Long: `Generate a task breakdown for a goal.

The goal is classified into a project type (mobile app, learning, event
planning, business startup or product launch) and the matching task
template is customized: titles, descriptions and priorities follow the
goal's wording, durations are scaled to fit --weeks, and dependencies are
inferred from task order and names.

If the goal is omitted and the terminal is interactive, you are prompted
for it.

Examples:
  taskplanner plan "Launch a mobile app in 3 weeks" --weeks 3
  taskplanner plan "Learn Rust" --context "evenings only" --format yaml
  taskplanner plan "Organize a conference" --save
  taskplanner plan "Start a bakery business" --review --out bakery.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.weeks, "weeks", "w", 0, "timeline in weeks; task durations are scaled to fit (default from config)")
	cmd.Flags().StringVarP(&opts.context, "context", "c", "", "extra context used for classification and priorities")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the breakdown to this file (.json, .yaml or .yml)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "write the breakdown under .taskplanner/plans")
	cmd.Flags().BoolVar(&opts.review, "review", false, "review the breakdown interactively before saving")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "never prompt for missing input")

	return cmd
}

func runPlan(cmd *cobra.Command, args []string, opts *planOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	logger := cmdCtx.Logger

	req := plan.Request{
		Goal:          strings.TrimSpace(strings.Join(args, " ")),
		TimelineWeeks: opts.weeks,
		Context:       opts.context,
	}
	if !cmd.Flags().Changed("weeks") {
		req.TimelineWeeks = cmdCtx.Config.Defaults.TimelineWeeks
	}

	interactive := !opts.noPrompt && tui.ShouldPrompt()
	if req.Goal == "" {
		if !interactive {
			return MissingGoalError()
		}
		if req, err = tui.PromptForRequest(req); err != nil {
			return err
		}
	}

	if err := req.Validate(); err != nil {
		return err
	}

	gen := plan.NewGenerator(plan.WithLogger(logger))
	b := gen.Generate(cmd.Context(), req)
	if b.Fallback {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: the goal could not be broken down normally; showing the generic fallback plan.")
	}

	if opts.review {
		if !interactive {
			logger.Warn("skipping review: terminal is not interactive")
		} else {
			result, err := tui.RunReview(b)
			if err != nil {
				return err
			}
			if !result.Approved {
				return ReviewRejectedError(result.Reason)
			}
		}
	}

	formatter, err := cmdCtx.Formatter(cmd)
	if err != nil {
		return ux.FormatError(err, "creating formatter")
	}
	if err := formatter.Format(b); err != nil {
		return ux.FormatError(err, "writing breakdown")
	}

	path := opts.out
	if path == "" && opts.save {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		path = ux.NewPathDefaultsWithDiscovery(cwd).PlanFile(req.Goal, cmdCtx.Format)
	}
	if path == "" {
		return nil
	}

	if err := plan.SaveBreakdown(b, path); err != nil {
		return err
	}
	logger.Info("saved breakdown", "path", path, "request_id", b.RequestID)
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Saved breakdown to %s\n", path)
	return nil
}
