package app

import (
	"context"
	"testing"

	"github.com/Mahad-007/PromptOptimizerMCP/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func callToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, res.Content, 1)
	content, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])

	return content.Text
}

func TestHandleOptimize(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		want    string
		wantErr bool
	}{
		{
			name: "labels the three variants",
			args: map[string]any{"raw_prompt": "Write a poem", "style": "creative"},
			want: "Variant 1: craft a compelling a poem\n\n" +
				"Variant 2: Imagine you're an expert in this field. Write a poem\n\n" +
				"Variant 3: Write a poem. in a way that captivates and inspires",
		},
		{
			name: "blank prompt still yields three labels",
			args: map[string]any{"raw_prompt": "   ", "style": "fast"},
			want: "Variant 1: \n\nVariant 2: \n\nVariant 3: ",
		},
		{
			name:    "unknown style",
			args:    map[string]any{"raw_prompt": "Write a poem", "style": "verbose"},
			wantErr: true,
		},
		{
			name:    "missing raw_prompt",
			args:    map[string]any{"style": "creative"},
			wantErr: true,
		},
		{
			name:    "non-string style",
			args:    map[string]any{"raw_prompt": "Write a poem", "style": 42},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := handleOptimize(callToolRequest("optimize_prompt", tt.args))

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleScore(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		want    string
		wantErr bool
	}{
		{
			name: "reports three decimals",
			args: map[string]any{
				"raw_prompt":      "compare quarterly revenue trends",
				"improved_prompt": "compare quarterly revenue trends",
			},
			want: "Effectiveness score: 0.920",
		},
		{
			name: "both empty",
			args: map[string]any{"raw_prompt": "", "improved_prompt": ""},
			want: "Effectiveness score: 1.000",
		},
		{
			name:    "missing improved_prompt",
			args:    map[string]any{"raw_prompt": "hello"},
			wantErr: true,
		},
		{
			name:    "non-string raw_prompt",
			args:    map[string]any{"raw_prompt": 1.5, "improved_prompt": "hello"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := handleScore(callToolRequest("score_prompt", tt.args))

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleConvertsFailuresToText(t *testing.T) {
	a := App{Limiter: rate.NewLimiter(rate.Inf, 0)}
	handler := a.handle("optimize_prompt", "Prompt optimization failed", handleOptimize)

	res, err := handler(context.Background(), callToolRequest("optimize_prompt", map[string]any{
		"raw_prompt": "Write a poem",
		"style":      "verbose",
	}))

	require.NoError(t, err, "failures must surface as text, not protocol errors")
	assert.Equal(t, "Prompt optimization failed: "+domain.ErrUnknownStyle.Error(), resultText(t, res))
}

func TestHandleSuccessPassesTextThrough(t *testing.T) {
	a := App{Limiter: rate.NewLimiter(rate.Inf, 0)}
	handler := a.handle("score_prompt", "Prompt scoring failed", handleScore)

	res, err := handler(context.Background(), callToolRequest("score_prompt", map[string]any{
		"raw_prompt":      "compare quarterly revenue trends",
		"improved_prompt": "compare quarterly revenue trends",
	}))

	require.NoError(t, err)
	assert.Equal(t, "Effectiveness score: 0.920", resultText(t, res))
}

func TestHandleRejectsWhenLimiterExhausted(t *testing.T) {
	a := App{Limiter: rate.NewLimiter(0, 0)}
	handler := a.handle("score_prompt", "Prompt scoring failed", handleScore)

	res, err := handler(context.Background(), callToolRequest("score_prompt", map[string]any{
		"raw_prompt":      "hello",
		"improved_prompt": "hello",
	}))

	require.NoError(t, err)
	assert.Equal(t, "Prompt scoring failed: "+domain.ErrTooManyRequests.Error(), resultText(t, res))
}
