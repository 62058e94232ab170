package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hyobin/workspace-mcp/internal/logging"
	"github.com/hyobin/workspace-mcp/internal/server"
)

// InstrumentedToolHandler wraps a tool handler with metrics and audit
// logging. It records the invocation counter and duration histogram and
// writes one log line per call. A handler failure is anything that
// returns a non-nil error or an IsError result.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(
	toolName string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := logging.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = logging.StatusError
		}

		sc.Metrics().RecordToolInvocation(ctx, toolName, status, duration)
		sc.Logger().Info("tool invocation",
			logging.Tool(toolName),
			logging.Status(status),
			logging.Duration(duration.Seconds()),
			logging.Err(err),
		)

		return result, err
	}
}
