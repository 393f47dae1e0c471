package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskplanner/internal/catalog"
	"github.com/felixgeelhaar/taskplanner/internal/domain"
	"github.com/felixgeelhaar/taskplanner/internal/ux"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [goal-type]",
		Short: "List goal types and their task templates",
		Long: `List the goal types a goal can be classified into and the template
tasks each one expands to, in plan order, with the keywords that select
each type.

Goal types: mobile_app, learning, event_planning, business_startup, product_launch

Example:
  taskplanner catalog learning`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			types := catalog.GoalTypes()
			if len(args) == 1 {
				gt, err := domain.NewGoalType(args[0])
				if err != nil {
					return NewErrorWithSuggestions("unknown goal type", err,
						"Run 'taskplanner catalog' to list all goal types")
				}
				types = []domain.GoalType{gt}
			}

			entries := make([]ux.CatalogEntry, 0, len(types))
			for _, gt := range types {
				entries = append(entries, ux.CatalogEntry{
					GoalType:   gt,
					Keywords:   catalog.KeywordsFor(gt),
					Archetypes: catalog.ArchetypesFor(gt),
				})
			}

			formatter, err := cmdCtx.Formatter(cmd)
			if err != nil {
				return ux.FormatError(err, "creating formatter")
			}
			return formatter.Format(entries)
		},
	}
}
