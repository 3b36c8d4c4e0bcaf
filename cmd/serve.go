package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/S-Anagha/Quizzy/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := newQuizService(cmd, st, "http")
		if err != nil {
			return err
		}

		cfg := server.ConfigFromEnv()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		if release, _ := cmd.Flags().GetBool("release"); release {
			gin.SetMode(gin.ReleaseMode)
		}

		return server.Serve(ctx, cfg, server.NewRouter(server.NewHandler(svc)))
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides QUIZZY_ADDR, default :8787)")
	serveCmd.Flags().Bool("release", false, "Run gin in release mode")
}
