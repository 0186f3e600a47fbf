package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/neuroscreen/internal/app"
	"github.com/abhisek/neuroscreen/internal/llm"
	"github.com/abhisek/neuroscreen/internal/logging"
	"github.com/abhisek/neuroscreen/internal/report"
	"github.com/abhisek/neuroscreen/internal/screens/home"
	"github.com/abhisek/neuroscreen/internal/store"
	"github.com/abhisek/neuroscreen/internal/textanalysis"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// startBattery skips the home menu and begins a battery immediately.
func runApp(cmd *cobra.Command, startBattery bool) error {
	ctx := cmd.Context()

	table, err := resolveNorms(cmd)
	if err != nil {
		return fmt.Errorf("load norms: %w", err)
	}

	log := buildLogger(cmd)
	defer log.Sync()

	deps := home.Deps{Norms: table, Log: log}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps.EventRepo = st.EventRepo()
	deps.SnapRepo = st.SnapshotRepo()

	provider, err := llm.NewProviderFromEnv(ctx, deps.EventRepo, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Picture description analysis and report generation will degrade.")
	} else {
		deps.Analyzer = textanalysis.NewService(provider)
		deps.Reporter = report.NewService(provider, report.DefaultConfig())
	}

	if startBattery {
		return app.RunAssessment(deps)
	}
	return app.Run(deps)
}

// buildLogger creates the file logger; failures fall back to a no-op
// logger rather than blocking the app.
func buildLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	path, err := logging.DefaultLogPath()
	if err != nil {
		return zap.NewNop()
	}
	log, err := logging.New(path, verbose)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
