package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/bigint"
)

var cmpCmd = &cobra.Command{
	Use:   "cmp A B",
	Short: "compare two decimal integers",
	Long:  `Cmp prints -1, 0 or 1 depending on whether A is less than, equal to or greater than B.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCmp,
}

func runCmp(cmd *cobra.Command, args []string) error {
	x, err := bigint.Parse(args[0])
	if err != nil {
		return errors.Wrapf(err, "operand %q", args[0])
	}
	y, err := bigint.Parse(args[1])
	if err != nil {
		return errors.Wrapf(err, "operand %q", args[1])
	}
	fmt.Fprintln(cmd.OutOrStdout(), x.Cmp(y))
	return nil
}
