// Package main is the entry point for the comments API server.
package main

import (
	"log/slog"

	"comments-api/internal/cli"
	"comments-api/internal/logger"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		logger.Fatal("Command failed", slog.String("error", err.Error()))
	}
}
