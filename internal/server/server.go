// Package server exposes quiz generation and grading over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/S-Anagha/Quizzy/internal/quiz"
	"github.com/S-Anagha/Quizzy/internal/quizgen"
)

// Banner is returned for every route the API does not serve.
const Banner = "Quizzy backend running!"

// QuizMaker produces a validated quiz for a topic.
type QuizMaker interface {
	Make(ctx context.Context, topic string) (quiz.Set, error)
}

// Handler serves the quiz API.
type Handler struct {
	quizzes QuizMaker
}

// NewHandler creates a Handler backed by quizzes.
func NewHandler(quizzes QuizMaker) *Handler {
	return &Handler{quizzes: quizzes}
}

// RegisterRoutes mounts the API on r.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/makeQuiz", h.makeQuiz)
	r.POST("/api/grade", h.grade)
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusOK, Banner)
	})
}

type makeQuizRequest struct {
	Topic string `json:"topic"`
}

type makeQuizResponse struct {
	Questions quiz.Set `json:"questions"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Kind    string `json:"kind,omitempty"`
}

func (h *Handler) makeQuiz(c *gin.Context) {
	var req makeQuizRequest
	// An empty body is a request without a topic.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid quiz request", Details: err.Error()})
		return
	}
	topic := quizgen.NormalizeTopic(req.Topic)

	log.Printf("makeQuiz: generating quiz for %q", topic)

	set, err := h.quizzes.Make(c.Request.Context(), topic)
	if err != nil {
		log.Printf("makeQuiz: topic %q failed: %s", topic, quizgen.Describe(err))

		f := quiz.ResultOf(nil, err).Failure
		c.JSON(statusFor(f.Kind), errorResponse{
			Error:   "Quiz generation failed",
			Details: f.UserMessage(),
			Kind:    string(f.Kind),
		})
		return
	}

	c.JSON(http.StatusOK, makeQuizResponse{Questions: set})
}

// statusFor maps a failure to an HTTP status. Upstream outages are a bad
// gateway; unusable model output is unprocessable.
func statusFor(kind quiz.FailureKind) int {
	if kind == quiz.KindGenerationUnavailable {
		return http.StatusBadGateway
	}
	return http.StatusUnprocessableEntity
}

type gradeRequest struct {
	Questions quiz.Set     `json:"questions"`
	Answers   quiz.Answers `json:"answers"`
}

func (h *Handler) grade(c *gin.Context) {
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid grade request", "details": err.Error()})
		return
	}
	if len(req.Questions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid grade request", "details": "questions are required"})
		return
	}

	c.JSON(http.StatusOK, quiz.GradeReport(req.Questions, req.Answers))
}

// Config holds HTTP server settings.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// DefaultConfig listens on :8787.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8787",
		ShutdownTimeout: 5 * time.Second,
	}
}

// ConfigFromEnv overlays QUIZZY_ADDR on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if a := os.Getenv("QUIZZY_ADDR"); a != "" {
		cfg.Addr = a
	}
	return cfg
}

// NewRouter builds the gin engine with logging and recovery middleware.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	h.RegisterRoutes(r)
	return r
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func Serve(ctx context.Context, cfg Config, h http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("quizzy API listening on %s", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
