package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/S-Anagha/Quizzy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizzy",
	Short: "Generate multiple-choice quizzes on any topic",
	Long:  "Quizzy asks a language model for a five question quiz on a topic, validates it, and serves it over HTTP or plays it in the terminal.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
	SilenceUsage: true,
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZZY_DB env var)")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider: cloudflare, anthropic, openai, gemini, openrouter (overrides QUIZZY_LLM_PROVIDER)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Dotenv file to load before reading configuration")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadDotEnv loads the dotenv file. Variables already set in the
// environment win, and a missing file is not an error.
func loadDotEnv(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("env-file")
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZZY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
