package cmd

import (
	"fmt"

	"github.com/avelar/lingo/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lingo",
	Short: "Vocabulary trainer with spaced repetition",
	Long:  "Lingo — terminal vocabulary trainer that schedules reviews with an adaptive SM-2 engine.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGO_DB env var)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(versionCmd)
}

// recentWindow is how many recent reviews feed the difficulty controller.
const recentWindow = 20

// openStore resolves the database path using the --db flag (highest
// priority), then the LINGO_DB env var, then the default XDG path, and
// opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return store.Open(p)
	}
	p, err := store.DefaultDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return store.Open(p)
}
