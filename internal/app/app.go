// Package app hosts the optimization core behind an MCP tool boundary.
// All wiring happens here; the tools themselves stay pass-through thin.
package app

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"
)

const (
	serverName    = "Prompt Optimizer MCP"
	serverVersion = "1.0.0"
)

type Config struct {
	Port      string
	Transport string
}

type App struct {
	Limiter *rate.Limiter
	Config  Config
}

func (a App) Start() error {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s.AddTool(optimizeTool(), a.handle("optimize_prompt", "Prompt optimization failed", handleOptimize))
	s.AddTool(scoreTool(), a.handle("score_prompt", "Prompt scoring failed", handleScore))

	if a.Config.Transport == "http" {
		slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
		return server.NewStreamableHTTPServer(s).Start(":" + a.Config.Port)
	}

	return server.ServeStdio(s)
}
