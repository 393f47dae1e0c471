package log

import (
	"io"
	"os"
	"strings"
)

// Format represents the output format for logs
type Format int

const (
	FormatJSON Format = iota
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	if f == FormatText {
		return "text"
	}
	return "json"
}

// ParseFormat parses a string into a Format. Unknown values map to JSON.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "text", "console":
		return FormatText
	default:
		return FormatJSON
	}
}

// ValidFormat reports whether s names a known format.
func ValidFormat(s string) bool {
	switch strings.ToLower(s) {
	case "json", "text", "console":
		return true
	}
	return false
}

// Config holds configuration for the logger
type Config struct {
	// Level is the minimum log level to output
	Level Level

	// Format is the output format (JSON or Text)
	Format Format

	// Output is where logs are written. Nil means stderr.
	Output io.Writer

	// AddSource includes source file and line number in logs
	AddSource bool
}

// DefaultConfig logs warnings and errors as text to stderr, keeping
// stdout free for command output.
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// FromSettings builds a Config from the level and format names found in
// the configuration file or on the command line.
func FromSettings(level, format string, w io.Writer) Config {
	return Config{
		Level:  ParseLevel(level),
		Format: ParseFormat(format),
		Output: w,
	}
}
