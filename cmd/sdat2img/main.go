package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Define writers for the command output and a reader for interactive
// prompts. Tests point these elsewhere to run commands without touching the
// process streams.
var (
	stderr io.Writer = os.Stderr
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

func main() {
	// Install a signal handler for SIGINT/SIGTERM to abort a running
	// assembly cleanly
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	rootCmd := newRootCommand()
	rootCmd.AddCommand(
		newConvertCommand(ctx),
		newInfoCommand(ctx),
	)
	if err := rootCmd.Execute(); err != nil {
		die(err)
	}
}

func die(err error) {
	fmt.Fprintln(stderr, "Error:", err)
	os.Exit(1)
}
