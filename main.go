package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Mahad-007/PromptOptimizerMCP/internal/app"
	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/time/rate"
)

func config() app.Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "10000"
	}

	transport := os.Getenv("MCP_TRANSPORT")
	if transport == "" {
		transport = "stdio"
	}

	return app.Config{Port: port, Transport: transport}
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using system environment variables")
	}

	a := app.App{
		Limiter: rate.NewLimiter(rate.Limit(20), 40),
		Config:  config(),
	}

	if err := a.Start(); err != nil {
		slog.Error(fmt.Sprintf("server stopped: %s", err.Error()))
		os.Exit(1)
	}
}
