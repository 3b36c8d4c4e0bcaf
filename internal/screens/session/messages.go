package session

import (
	"time"

	"github.com/S-Anagha/Quizzy/internal/quiz"
)

// quizReadyMsg carries the outcome of one Make call. attempt ties it to
// the request that produced it so stale results are dropped.
type quizReadyMsg struct {
	attempt int
	Set     quiz.Set
	Err     error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
