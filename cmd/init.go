package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/boolproof/internal/config"
)

// initCmd: boolproof init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .boolproof.yaml configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = ".boolproof.yaml"
		}
		if err := config.Write(path, config.Default()); err != nil {
			logger.Error("failed to write config file", zap.Error(err))
			return err
		}
		fmt.Printf("configuration file created/updated: %s\n", path)
		return nil
	},
}
