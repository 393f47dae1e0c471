package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/taskplanner/internal/advisor"
	"github.com/felixgeelhaar/taskplanner/internal/plan"
)

// Formatter defines the interface for output formatters.
// This enables consistent output formatting across all commands.
type Formatter interface {
	// Format writes the given data to the output writer
	Format(data interface{}) error
}

// FormatterOptions contains configuration for formatters
type FormatterOptions struct {
	// Writer is where output is written (defaults to os.Stdout)
	Writer io.Writer
	// NoColor disables colored output for text formatters
	NoColor bool
	// Compact enables compact output (no indentation for JSON/YAML)
	Compact bool
}

// NewFormatter creates a formatter based on the format string
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	if opts == nil {
		opts = &FormatterOptions{Writer: os.Stdout}
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case "json":
		return &JSONFormatter{opts: opts}, nil
	case "yaml":
		return &YAMLFormatter{opts: opts}, nil
	case "text", "":
		return &TextFormatter{opts: opts, styles: NewStyles(opts.NoColor)}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, yaml)", format)
	}
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	opts *FormatterOptions
}

// Format writes data as JSON
func (f *JSONFormatter) Format(data interface{}) error {
	encoder := json.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	opts *FormatterOptions
}

// Format writes data as YAML
func (f *YAMLFormatter) Format(data interface{}) error {
	encoder := yaml.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		encoder.SetIndent(2)
	}
	defer encoder.Close()
	return encoder.Encode(data)
}

// TextFormatter formats output as human-readable text
type TextFormatter struct {
	opts   *FormatterOptions
	styles Styles
}

// Format writes data as formatted text. Breakdowns, complexity analyses,
// suggestion lists and catalog listings get dedicated layouts; anything
// else must be a string or implement fmt.Stringer.
func (f *TextFormatter) Format(data interface{}) error {
	var out string
	switch v := data.(type) {
	case *plan.Breakdown:
		out = RenderBreakdown(v, f.styles)
	case advisor.ComplexityAnalysis:
		out = RenderAnalysis(v, f.styles)
	case Suggestions:
		out = RenderSuggestions(v, f.styles)
	case []CatalogEntry:
		out = RenderCatalog(v, f.styles)
	case string:
		out = v
	case fmt.Stringer:
		out = v.String()
	default:
		return fmt.Errorf("text formatter cannot render %T; use --format json or yaml", data)
	}
	_, err := fmt.Fprintln(f.opts.Writer, out)
	return err
}

// Compile-time verification that formatters implement Formatter
var _ Formatter = (*JSONFormatter)(nil)
var _ Formatter = (*YAMLFormatter)(nil)
var _ Formatter = (*TextFormatter)(nil)
