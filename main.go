package main

import (
	"context"
	"os"

	"github.com/S-Anagha/Quizzy/cmd"
)

func main() {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
