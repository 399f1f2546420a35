package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Mahad-007/PromptOptimizerMCP/internal/domain"
	"github.com/Mahad-007/PromptOptimizerMCP/internal/optimize"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func optimizeTool() mcp.Tool {
	return mcp.NewTool("optimize_prompt",
		mcp.WithDescription("Generate 3 optimized variants of the raw LLM prompt in a chosen style. Styles: creative, precise, fast."),
		mcp.WithString("raw_prompt",
			mcp.Required(),
			mcp.Description("The original prompt to optimize"),
		),
		mcp.WithString("style",
			mcp.Required(),
			mcp.Description("The optimization style"),
			mcp.Enum("creative", "precise", "fast"),
		),
	)
}

func scoreTool() mcp.Tool {
	return mcp.NewTool("score_prompt",
		mcp.WithDescription("Score an improved prompt relative to the raw prompt. Returns an effectiveness score between 0 and 1."),
		mcp.WithString("raw_prompt",
			mcp.Required(),
			mcp.Description("The original prompt"),
		),
		mcp.WithString("improved_prompt",
			mcp.Required(),
			mcp.Description("The optimized version to evaluate"),
		),
	)
}

type toolFunc func(req mcp.CallToolRequest) (string, error)

// handle wraps a tool body with the boundary concerns: rate limiting,
// per-run logging, and turning every failure into a descriptive text
// result. The MCP caller never sees a protocol-level error.
func (a App) handle(name string, failPrefix string, fn toolFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		runId := uuid.New().String()

		if !a.Limiter.Allow() {
			slog.Warn(fmt.Sprintf("run %s: %s rejected: %s", runId, name, domain.ErrTooManyRequests))
			return mcp.NewToolResultText(fmt.Sprintf("%s: %s", failPrefix, domain.ErrTooManyRequests)), nil
		}

		start := time.Now()
		text, err := fn(req)

		if err != nil {
			slog.Error(fmt.Sprintf("run %s: %s failed: %s", runId, name, err.Error()))
			return mcp.NewToolResultText(fmt.Sprintf("%s: %s", failPrefix, err)), nil
		}

		slog.Info(fmt.Sprintf("run %s: %s completed in %s", runId, name, time.Since(start)))
		return mcp.NewToolResultText(text), nil
	}
}

func handleOptimize(req mcp.CallToolRequest) (string, error) {
	rawPrompt, err := req.RequireString("raw_prompt")
	if err != nil {
		return "", err
	}

	styleArg, err := req.RequireString("style")
	if err != nil {
		return "", err
	}

	style, err := domain.ParseStyle(styleArg)
	if err != nil {
		return "", err
	}

	variants, err := optimize.Variants(rawPrompt, style)
	if err != nil {
		return "", err
	}

	o := domain.Optimization{
		Id:             uuid.New().String(),
		OriginalPrompt: rawPrompt,
		Style:          string(style),
		Variants:       variants,
	}

	return formatVariants(o), nil
}

func handleScore(req mcp.CallToolRequest) (string, error) {
	rawPrompt, err := req.RequireString("raw_prompt")
	if err != nil {
		return "", err
	}

	improvedPrompt, err := req.RequireString("improved_prompt")
	if err != nil {
		return "", err
	}

	s := domain.Scoring{
		Id:             uuid.New().String(),
		OriginalPrompt: rawPrompt,
		ImprovedPrompt: improvedPrompt,
		Score:          optimize.Score(rawPrompt, improvedPrompt),
	}

	return fmt.Sprintf("Effectiveness score: %.3f", s.Score), nil
}

func formatVariants(o domain.Optimization) string {
	lines := make([]string, 0, len(o.Variants))
	for i, v := range o.Variants {
		lines = append(lines, fmt.Sprintf("Variant %d: %s", i+1, v))
	}

	return strings.Join(lines, "\n\n")
}
