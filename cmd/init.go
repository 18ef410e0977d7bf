package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinnych/portfolio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize portfolio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to describe your profile and GitHub account and writes portfolio.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("Configuration for %s written to %s\n", cfg.GitHub.Username, cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
