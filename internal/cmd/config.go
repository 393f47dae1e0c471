package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/taskplanner/internal/config"
	"github.com/felixgeelhaar/taskplanner/internal/tui"
	"github.com/felixgeelhaar/taskplanner/internal/ux"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit taskplanner configuration",
		Long: `Manage taskplanner configuration stored at ~/.taskplanner/config.yaml, or at
.taskplanner/config.yaml in the current project when one exists.

Keys:
  ` + strings.Join(config.Keys(), "\n  ") + `

Examples:
  # View current configuration
  taskplanner config view

  # Get a specific value
  taskplanner config get defaults.timeline_weeks

  # Set a specific value
  taskplanner config set defaults.format yaml

  # Show configuration file path
  taskplanner config path
`,
	}

	configCmd.AddCommand(
		newConfigViewCmd(),
		newConfigPathCmd(),
		newConfigInitCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
	)
	return configCmd
}

func newConfigViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			if cmdCtx.Format == "text" {
				data, err := yaml.Marshal(cmdCtx.Config)
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", cmdCtx.ConfigPath, data)
				return nil
			}

			formatter, err := cmdCtx.Formatter(cmd)
			if err != nil {
				return ux.FormatError(err, "creating formatter")
			}
			return formatter.Format(cmdCtx.Config)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cmdCtx.ConfigPath)
			if _, err := os.Stat(cmdCtx.ConfigPath); os.IsNotExist(err) {
				fmt.Fprintln(cmd.ErrOrStderr(), "(file does not exist yet; run 'taskplanner config init' to create it)")
			}
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			path := cmdCtx.ConfigPath

			if _, err := os.Stat(path); err == nil && !force {
				message := fmt.Sprintf("%s already exists. Overwrite?", path)
				var overwrite bool
				if tui.ShouldPrompt() {
					if overwrite, err = tui.PromptForConfirmation(message, false); err != nil {
						return err
					}
				} else {
					overwrite = ux.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), message, false)
				}
				if !overwrite {
					return NewErrorWithSuggestions(
						fmt.Sprintf("config file already exists: %s", path),
						nil,
						"Use --force to overwrite it",
						"Use 'taskplanner config set <key> <value>' to change single values",
					)
				}
			}

			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote default configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			value, err := cmdCtx.Config.Get(args[0])
			if err != nil {
				return unknownKeyError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a specific configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if err := cmdCtx.Config.Set(key, value); err != nil {
				return unknownKeyError(err)
			}
			if err := config.Save(cmdCtx.Config, cmdCtx.ConfigPath); err != nil {
				return err
			}
			cmdCtx.Logger.Debug("config updated", "key", key, "path", cmdCtx.ConfigPath)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", key, value)
			return nil
		},
	}
}

func unknownKeyError(err error) error {
	return NewErrorWithSuggestions("invalid configuration key or value", err,
		"Valid keys: "+strings.Join(config.Keys(), ", "))
}
