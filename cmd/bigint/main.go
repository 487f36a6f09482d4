package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "bigint",
	Short:         "Arbitrary-precision integer calculator",
	Long:          `bigint parses, multiplies and compares arbitrary-precision decimal integers.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(cmpCmd)
	rootCmd.AddCommand(parseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
