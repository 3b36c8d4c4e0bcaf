package cmd

import (
	"github.com/spf13/cobra"

	"github.com/S-Anagha/Quizzy/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play quizzes in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := newQuizService(cmd, st, "tui")
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), svc)
}
