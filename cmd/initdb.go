package cmd

import (
	"fmt"

	"github.com/agentic-research/topicstore/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty topic-map database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := store.Create(cmd.Context(), cfg.DatabasePath); err != nil {
			return err
		}
		fmt.Printf("Initialised topic map database at %s\n", cfg.DatabasePath)
		return nil
	},
}
