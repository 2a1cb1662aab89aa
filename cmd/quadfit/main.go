// Command quadfit approximates point sequences with chains of quadratic
// Bézier curves.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quadfit",
		Short: "Fit quadratic Bézier curves to point sequences",
		Long: `quadfit reads an ordered sequence of 2D points, such as a skeletonized
line or a GPS trace, and approximates it with a minimal chain of quadratic
Bézier curves. The partition into curves is globally optimal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newFitCmd(), newVersionCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
