package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/S-Anagha/Quizzy/internal/quiz"
	"github.com/S-Anagha/Quizzy/internal/quizgen"
	"github.com/S-Anagha/Quizzy/internal/ui/components"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one quiz and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		asJSON, _ := cmd.Flags().GetBool("json")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := newQuizService(cmd, st, "cli")
		if err != nil {
			return err
		}

		set, err := svc.Make(cmd.Context(), topic)
		if err != nil {
			return fmt.Errorf("%s (%s)", quiz.ResultOf(nil, err).Failure.UserMessage(), quizgen.Describe(err))
		}
		return printSet(cmd.OutOrStdout(), set, asJSON)
	},
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Quiz topic (default \""+quizgen.DefaultTopic+"\")")
	generateCmd.Flags().Bool("json", false, "Print the quiz as JSON in the HTTP response shape")
}

func printSet(w io.Writer, set quiz.Set, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]quiz.Set{"questions": set})
	}
	for i, q := range set {
		fmt.Fprintf(w, "%d. %s\n", i+1, q.Question)
		for j, o := range q.Options {
			mark := " "
			if o == q.Correct {
				mark = "*"
			}
			fmt.Fprintf(w, "   %s %s) %s\n", mark, components.Label(j), o)
		}
		fmt.Fprintln(w)
	}
	return nil
}
