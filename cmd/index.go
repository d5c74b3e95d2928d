package cmd

import (
	"fmt"
	"strconv"

	"github.com/agentic-research/topicstore/internal/search"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [map-id]",
	Short: "Build the occurrence text index for one map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mapID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid map id %q: %w", args[0], err)
		}

		s, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }() // safe to ignore

		ix, err := search.NewIndexer(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer func() { _ = ix.Close() }() // safe to ignore

		return ix.Build(cmd.Context(), s, mapID)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [token]",
	Short: "Look up occurrences whose text contains a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ix, err := search.NewIndexer(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer func() { _ = ix.Close() }() // safe to ignore

		identifiers, err := ix.Lookup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, identifier := range identifiers {
			fmt.Println(identifier)
		}
		return nil
	},
}
