package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/S-Anagha/Quizzy/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Inspect quiz generation outcomes",
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent quiz generations with their diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		since, _ := cmd.Flags().GetDuration("since")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := s.EventRepo().QueryQuizEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No quiz events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-5s  %-24s  %-22s  %-7s  %s\n",
			"ID", "Timestamp", "Via", "Topic", "Outcome", "Ms", "Detail")
		fmt.Println(strings.Repeat("─", 110))

		for _, e := range events {
			outcome := "ok"
			if !e.Success {
				outcome = e.FailureKind
			}
			fmt.Printf("%-5d  %-19s  %-5s  %-24s  %-22s  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Source,
				truncate(e.Topic, 24),
				outcome,
				e.LatencyMs,
				truncate(oneLine(e.Detail), 60),
			)
		}
		return nil
	},
}

var quizStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count quiz generations by outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		counts, err := s.EventRepo().QuizOutcomes(cmd.Context())
		if err != nil {
			return fmt.Errorf("query outcomes: %w", err)
		}
		if len(counts) == 0 {
			fmt.Println("No quiz generations recorded yet.")
			return nil
		}

		fmt.Printf("%-24s  %6s\n", "Outcome", "Count")
		fmt.Println(strings.Repeat("─", 32))
		total := 0
		for _, c := range counts {
			kind := c.Kind
			if kind == "" {
				kind = "ok"
			}
			fmt.Printf("%-24s  %6d\n", kind, c.Count)
			total += c.Count
		}
		fmt.Println(strings.Repeat("─", 32))
		fmt.Printf("%-24s  %6d\n", "TOTAL", total)
		return nil
	},
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func init() {
	quizListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	quizListCmd.Flags().Duration("since", 0, "Only show events newer than this (e.g. 24h)")

	quizCmd.AddCommand(quizListCmd)
	quizCmd.AddCommand(quizStatsCmd)
}
