package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/neuroscreen/internal/norms"
	"github.com/abhisek/neuroscreen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "neuroscreen",
	Short: "Terminal cognitive screening battery",
	Long: "NeuroScreen — terminal app that administers a battery of cognitive\n" +
		"screening tests (memory, fluency, trails, color-word, picture description)\n" +
		"and reports a normalized composite score. Screening only, not a diagnosis.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NEUROSCREEN_DB env var)")
	rootCmd.PersistentFlags().String("norms", "", "Path to a TOML norms override file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NEUROSCREEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveNorms loads the norms table from --norms, the default XDG
// location, or the built-in defaults.
func resolveNorms(cmd *cobra.Command) (norms.Table, error) {
	path, _ := cmd.Flags().GetString("norms")
	if path == "" {
		path = norms.DefaultTablePath()
	}
	return norms.LoadTable(path)
}
