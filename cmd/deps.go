package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/S-Anagha/Quizzy/internal/llm"
	"github.com/S-Anagha/Quizzy/internal/quizgen"
	"github.com/S-Anagha/Quizzy/internal/store"
)

// newProvider builds the LLM provider, logging calls into events.
// --provider selects a provider explicitly; otherwise QUIZZY_* settings
// are used, falling back to the vendor key variables.
func newProvider(cmd *cobra.Command, events store.EventRepo) (llm.Provider, error) {
	if name, _ := cmd.Flags().GetString("provider"); name != "" {
		cfg := llm.ConfigFromEnv()
		cfg.Provider = name
		return llm.NewProvider(cmd.Context(), cfg, events)
	}
	return llm.NewProviderFromEnv(cmd.Context(), events)
}

// newQuizService wires provider, generator and event store for one
// entry point. source labels the quiz events it records.
func newQuizService(cmd *cobra.Command, st *store.Store, source string) (*quizgen.Service, error) {
	events := st.EventRepo()
	provider, err := newProvider(cmd, events)
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}
	cfg := quizgen.ConfigFromEnv()
	return quizgen.NewService(quizgen.New(provider, cfg), cfg, events, source), nil
}
