package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskplanner/internal/ux"
	"github.com/felixgeelhaar/taskplanner/internal/version"
)

func newVersionCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print version information including version number, git commit,
build date, Go version, and platform.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()

			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}
			if format != "text" {
				formatter, err := ux.NewFormatter(format, &ux.FormatterOptions{Writer: cmd.OutOrStdout()})
				if err != nil {
					return ux.FormatError(err, "creating formatter")
				}
				return formatter.Format(info)
			}

			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "taskplanner %s\n", info.Short())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed version information")
	return cmd
}
