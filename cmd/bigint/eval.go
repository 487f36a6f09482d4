package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/bigint"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "evaluate a product of decimal integers",
	Long: `Eval parses EXPR as one or more decimal integers joined by '*' and prints
their exact product.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")
	z, err := evalProduct(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), z)
	return nil
}

func evalProduct(expr string) (*bigint.Int, error) {
	var z *bigint.Int
	for _, tok := range strings.Split(expr, "*") {
		x, err := bigint.Parse(strings.TrimSpace(tok))
		if err != nil {
			return nil, errors.Wrapf(err, "operand %q", tok)
		}
		if z == nil {
			z = x
			continue
		}
		z = new(bigint.Int).Mul(z, x)
	}
	return z, nil
}
