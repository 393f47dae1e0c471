package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskplanner/internal/config"
	"github.com/felixgeelhaar/taskplanner/internal/log"
	"github.com/felixgeelhaar/taskplanner/internal/ux"
)

// CommandContext holds the resolved flags and configuration for one
// command invocation. Flags explicitly set on the command line win over
// values from the configuration file.
type CommandContext struct {
	Format     string
	NoColor    bool
	ConfigPath string
	Config     *config.Config
	Logger     *log.Logger
}

// NewCommandContext extracts command context from cobra.Command flags.
// Commands should call this in their RunE function to get their configuration:
//
//	func runCommand(cmd *cobra.Command, args []string) error {
//		cmdCtx, err := NewCommandContext(cmd)
//		if err != nil {
//			return err
//		}
//		// Use cmdCtx.Format, cmdCtx.Logger, etc.
//	}
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		configPath, err = defaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	format := cfg.Defaults.Format
	if flags.Changed("format") {
		if format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}

	noColor := cfg.Defaults.NoColor || os.Getenv("NO_COLOR") != ""
	if flags.Changed("no-color") {
		if noColor, err = flags.GetBool("no-color"); err != nil {
			return nil, err
		}
	}

	level := cfg.Logging.Level
	if flags.Changed("log-level") {
		if level, err = flags.GetString("log-level"); err != nil {
			return nil, err
		}
	}
	logFormat := cfg.Logging.Format
	if flags.Changed("log-format") {
		if logFormat, err = flags.GetString("log-format"); err != nil {
			return nil, err
		}
	}
	if level != "" && !log.ValidLevel(level) {
		return nil, fmt.Errorf("invalid argument %q for --log-level (use debug, info, warn, or error)", level)
	}

	logger := log.New(log.FromSettings(level, logFormat, cmd.ErrOrStderr()))
	log.SetDefaultLogger(logger)

	return &CommandContext{
		Format:     format,
		NoColor:    noColor,
		ConfigPath: configPath,
		Config:     cfg,
		Logger:     logger,
	}, nil
}

// Formatter returns an output formatter writing to the command's stdout.
func (c *CommandContext) Formatter(cmd *cobra.Command) (ux.Formatter, error) {
	return ux.NewFormatter(c.Format, &ux.FormatterOptions{
		Writer:  cmd.OutOrStdout(),
		NoColor: c.NoColor,
	})
}

// defaultConfigPath prefers a project-level .taskplanner/config.yaml and
// falls back to the per-user file.
func defaultConfigPath() (string, error) {
	home, err := config.Path()
	if err != nil {
		return "", err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return home, nil
	}
	return ux.DiscoverConfigFile(cwd, home), nil
}
