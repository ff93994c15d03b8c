package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/boolproof/internal/config"
	"github.com/gnoswap-labs/boolproof/internal/parser"
	"github.com/gnoswap-labs/boolproof/internal/report"
)

var generateMaxSteps int

var generateCmd = &cobra.Command{
	Use:   "generate [expr]",
	Short: "Enumerate expressions reachable from expr by rewriting",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("generate requires exactly one argument: the seed expression")
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Fatal("failed to load configuration", zap.Error(err))
		}

		seed, err := parser.Parse(args[0])
		if err != nil {
			return fmt.Errorf("parsing expression: %w", err)
		}

		s := newSearch(cfg)
		forms := s.GenerateEquivalentForms(seed, generateMaxSteps)
		report.WriteForms(cmd.OutOrStdout(), forms)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateMaxSteps, "max-steps", 20, "BFS depth bound for the rewrite exploration")
}
