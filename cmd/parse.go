package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnoswap-labs/boolproof/internal/expr"
	"github.com/gnoswap-labs/boolproof/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [expr]",
	Short: "Parse an expression and print its canonical form",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("parse requires exactly one argument: the expression")
		}
		e, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), expr.Print(e))
		return nil
	},
}
