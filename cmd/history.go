package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/neuroscreen/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed battery runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		runs, err := s.EventRepo().CompletedBatteries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query batteries: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No completed batteries found.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %-5s  %-7s  %-8s  %s\n",
			"Completed", "Duration", "Tests", "CCS", "Band", "Skipped")
		fmt.Println(strings.Repeat("─", 72))

		for _, r := range runs {
			skipped := "-"
			if len(r.SkippedTests) > 0 {
				skipped = strings.Join(r.SkippedTests, ", ")
			}
			fmt.Printf("%-19s  %5d:%02d  %5d  %+7.2f  %-8s  %s\n",
				r.CompletedAt.Local().Format("2006-01-02 15:04:05"),
				r.DurationSecs/60,
				r.DurationSecs%60,
				r.CompletedTests,
				r.CCS,
				r.Interpretation,
				skipped,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of batteries to show")
}
