package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/bigint"
)

var parseTrace bool

var parseCmd = &cobra.Command{
	Use:   "parse N",
	Short: "parse a decimal integer and reprint it canonically",
	Long: `Parse reads N as a signed decimal integer and prints its canonical form
(no leading zeros, no negative zero).

With --trace, the value and limb state after every digit push are written
to stderr. Tracing is purely observational: it feeds the same digits
through the same multiply-add primitive the parser uses.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseTrace, "trace", false, "trace limb state after every digit push")
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseTrace {
		z, err := parseTraced(args[0], os.Stderr)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), z)
		return nil
	}

	z, err := bigint.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), z)
	return nil
}

// parseTraced parses s one digit at a time through MulAddWord, logging the
// intermediate value and limbs to w after every push.
func parseTraced(s string, w *os.File) (*bigint.Int, error) {
	digit := color.New(color.FgCyan)
	state := color.New(color.Faint)

	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	if i == len(s) || s[i] < '0' || s[i] > '9' {
		return nil, errors.Wrapf(bigint.ErrInvalidFormat, "parsing %q", s)
	}

	z := new(bigint.Int)
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		z.MulAddWord(10, bigint.Word(s[i]-'0'))
		fmt.Fprintf(w, "pushed digit %s: %s %s\n",
			digit.Sprintf("%c", s[i]), z, state.Sprintf("limbs = %v", z.Limbs()))
	}
	if i != len(s) {
		fmt.Fprintf(w, "stopped at %q\n", s[i:])
	}
	if neg {
		z.Neg(z)
	}
	return z, nil
}
