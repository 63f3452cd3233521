package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/netlayer/version"
)

func versionSubcommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if output == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, info)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "print as json or yaml instead of a single line")
	return cmd
}
