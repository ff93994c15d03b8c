package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/boolproof/internal/config"
)

var (
	cfgFile string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boolproof [start] [target]",
	Short: "boolproof - an automated equivalence prover for propositional logic",
	Long: `boolproof - an automated equivalence prover for propositional logic

Supported operators:
  !  ~  ¬       (NOT)
  &  &&  ∧      (AND)
  |  ||  ∨      (OR)
  ->            (IMPLIES)
  <->           (BICONDITIONAL)
  T             (TRUE)
  F             (FALSE)

Examples:
  boolproof "A & B" "B & A"    prove equivalence
  boolproof prove "A & B" "B & A"
  boolproof generate "!(A & B)"    enumerate equivalent forms
  boolproof                    run the interactive REPL`,
	TraverseChildren: true,
	SilenceUsage:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			cfg, err := config.Load(cfgFile)
			if err != nil {
				logger.Fatal("failed to load configuration", zap.Error(err))
			}
			return runRepl(cfg, os.Stdin, cmd.OutOrStdout())
		case 2:
			// Format: boolproof [start] [target] => behaves like the prove subcommand
			return proveCmd.RunE(proveCmd, args)
		default:
			return cmd.Help()
		}
	},
}

// Execute runs the root command; it is the sole entry point cmd/boolproof
// calls from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to .boolproof.yaml (default: ./.boolproof.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (development-mode) logging")

	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(initCmd)
}
