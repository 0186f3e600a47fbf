package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/neuroscreen/internal/llm"
	"github.com/abhisek/neuroscreen/internal/store"
	"github.com/abhisek/neuroscreen/internal/textanalysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a speech transcript for linguistic risk markers",
	Long: "Runs the picture-description classifier over a transcript read from\n" +
		"the given file, or from stdin when no file is named.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var text []byte
		var err error
		if len(args) == 1 {
			text, err = os.ReadFile(args[0])
		} else {
			text, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("read transcript: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured; using heuristic classifier.")
			provider = nil
		}

		svc := textanalysis.NewService(provider)
		result, err := svc.Analyze(ctx, string(text))
		if err != nil {
			return fmt.Errorf("analyze transcript: %w", err)
		}

		f := result.Features
		fmt.Printf("Risk level:         %s\n", result.RiskLevel)
		fmt.Printf("Confidence:         %.2f\n", result.Confidence)
		fmt.Printf("Classifier:         %s\n", result.ClassifierName)
		fmt.Printf("Word count:         %d\n", f.WordCount)
		fmt.Printf("Sentence count:     %d\n", f.SentenceCount)
		fmt.Printf("Avg words/sentence: %.2f\n", f.AvgWordsPerSentence)
		fmt.Printf("Lexical diversity:  %.3f\n", f.LexicalDiversity)
		if result.Reasoning != "" {
			fmt.Printf("\n%s\n", strings.TrimSpace(result.Reasoning))
		}
		return nil
	},
}
