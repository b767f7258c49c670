package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/smartlearn/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "smartlearn",
	Short: "AI study assistant in your terminal",
	Long:  "SmartLearn is a terminal companion for studying: summarize text, translate it, and quiz yourself on it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SMARTLEARN_DB env var)")
	rootCmd.PersistentFlags().String("api", "", "Backend base URL (overrides SMARTLEARN_API_URL env var)")

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SMARTLEARN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
