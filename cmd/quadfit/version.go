package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set via ldflags during release builds.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quadfit %s\n", version)
		},
	}
}
