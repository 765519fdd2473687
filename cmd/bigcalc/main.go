package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	apperrors "github.com/agbruneau/bigint/internal/errors"
)

// main wires SIGINT/SIGTERM to the application's canceled exit code and
// otherwise defers entirely to the cobra command tree rooted at rootCmd.
func main() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "bigcalc: interrupted")
		os.Exit(apperrors.ExitErrorCanceled)
	}()

	if err := rootCmd.Execute(); err != nil {
		// Flag parsing and argument-count errors land here; cobra has
		// already printed usage, so this is a configuration failure.
		os.Exit(apperrors.ExitErrorConfig)
	}
}
