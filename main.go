package main

import (
	"log/slog"

	"github.com/joho/godotenv"

	"reponavigator/packages/cli"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found")
	}

	cli.Execute()
}
