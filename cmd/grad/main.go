// Package main provides the grad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

var (
	rootCmd = &cobra.Command{
		Use:   "grad",
		Short: "A cli for the grad scalar autodiff engine",
		Long: `grad builds scalar expressions, evaluates them forward and computes
exact gradients for every input with a single backward pass.`,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "grad %s\n", version)
		},
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(traceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
