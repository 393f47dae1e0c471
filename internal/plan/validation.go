package plan

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

// Validate checks the draft at position index. Dependencies must point at
// strictly earlier positions and must not repeat.
func (t *TaskDraft) Validate(index int) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if err := t.Priority.Validate(); err != nil {
		return fmt.Errorf("invalid priority: %w", err)
	}

	if t.EstimatedDurationHours <= 0 {
		return fmt.Errorf("estimated duration must be positive, got %d", t.EstimatedDurationHours)
	}

	if t.DueDateOffsetDays < 0 {
		return fmt.Errorf("due date offset must not be negative, got %d", t.DueDateOffsetDays)
	}

	seen := IndexSet{}
	for _, dep := range t.Dependencies {
		if dep < 0 {
			return fmt.Errorf("dependency %d is not a task position", dep)
		}
		if dep >= index {
			return errors.New(errors.ErrCodePlanCyclicDep,
				fmt.Sprintf("task %d has forward or circular dependency on task %d", index, dep))
		}
		if seen.Has(dep) {
			return fmt.Errorf("dependency %d listed twice", dep)
		}
		seen.Add(dep)
	}

	return nil
}

// Validate checks the breakdown as a whole.
func (b *Breakdown) Validate() error {
	if len(b.Tasks) == 0 {
		return errors.NewPlanInvalidError("breakdown must have at least one task")
	}

	if b.EstimatedDurationDays < 1 {
		return errors.NewPlanInvalidError(
			fmt.Sprintf("estimated duration must be at least one day, got %d", b.EstimatedDurationDays))
	}

	if b.GoalType != "" {
		if err := b.GoalType.Validate(); err != nil {
			return errors.NewPlanInvalidError(err.Error())
		}
	}

	for i := range b.Tasks {
		if err := b.Tasks[i].Validate(i); err != nil {
			if errors.Code(err) != "" {
				return err
			}
			return errors.NewPlanInvalidError(fmt.Sprintf("task at index %d (%s): %v", i, b.Tasks[i].Title, err))
		}
	}

	return nil
}
