package config

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/felixgeelhaar/taskplanner/internal/log"
)

// OutputFormats are the accepted values of defaults.format.
var OutputFormats = []string{"text", "json", "yaml"}

// Validate checks every field and reports all problems at once as
// criterio field errors.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.Defaults.TimelineWeeks < 0 {
		errs = errs.Append("defaults.timeline_weeks",
			fmt.Errorf("must not be negative, got %d", c.Defaults.TimelineWeeks))
	}

	return criterio.ValidateStruct(
		criterio.Run("defaults.format", c.Defaults.Format, outputFormat),
		criterio.Run("logging.level", c.Logging.Level, logLevel),
		criterio.Run("logging.format", c.Logging.Format, logFormat),
		errs.ToError(),
	)
}

func outputFormat(s string) error {
	if s == "" {
		return nil
	}
	for _, f := range OutputFormats {
		if s == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (use text, json, or yaml)", s)
}

func logLevel(s string) error {
	if s == "" || log.ValidLevel(s) {
		return nil
	}
	return fmt.Errorf("unknown log level %q", s)
}

func logFormat(s string) error {
	if s == "" || log.ValidFormat(s) {
		return nil
	}
	return fmt.Errorf("unknown log format %q", s)
}
