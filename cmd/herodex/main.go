// Package main provides the entry point for the herodex CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Optional .env file; environment variables win if it is absent.
	_ = godotenv.Load()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "herodex",
		Short:   "Generate superheroes, portraits, and serialized story chapters",
		Version: version,
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newServeCmd(),
		newCreateCmd(),
		newChapterCmd(),
		newListCmd(),
		newShowCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
