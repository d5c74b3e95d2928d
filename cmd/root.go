// Package cmd wires the topicstore CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/agentic-research/topicstore/internal/config"
	"github.com/agentic-research/topicstore/internal/store"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to HCL configuration file")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to topic-map database (overrides config)")
}

var rootCmd = &cobra.Command{
	Use:           "topicstore",
	Short:         "Topicstore: read and query topic-map databases",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig resolves the effective configuration from the --config and
// --db flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	return cfg, nil
}

// openStore opens the configured database read-only with the configured
// logger. The caller must Close the returned store.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(cfg.DatabasePath, store.Options{
		Logger:       cfg.Logger(),
		MaxOpenConns: cfg.MaxOpenConns,
	})
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
