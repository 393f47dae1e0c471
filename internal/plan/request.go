package plan

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

// Validate checks a request before it is handed to a Generator. The
// generator itself accepts any request; callers that want to reject blank
// goals or malformed timelines up front use this.
func (r Request) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if r.TimelineWeeks < 0 {
		errs = errs.Append("timeline_weeks", fmt.Errorf("must be a positive number of weeks, got %d", r.TimelineWeeks))
	}

	err := criterio.ValidateStruct(
		criterio.Run("goal", r.Goal, notBlank),
		errs.ToError(),
	)
	if err == nil {
		return nil
	}

	if strings.TrimSpace(r.Goal) == "" {
		return errors.Wrap(errors.ErrCodeGoalEmpty, "goal description is required", err).
			WithSuggestion("Describe what you want to achieve, e.g. \"Launch a mobile app in 3 weeks\"")
	}
	return errors.Wrap(errors.ErrCodeTimelineInvalid, "timeline must be a positive number of weeks", err).
		WithSuggestion("Omit --weeks or pass a value of at least 1")
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("must not be blank")
	}
	return nil
}
