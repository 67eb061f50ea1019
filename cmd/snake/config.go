package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration snake would run with, after the config file
search and flag overrides. Redirect it to a file to start a custom config:

  snake config > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("cannot render config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
