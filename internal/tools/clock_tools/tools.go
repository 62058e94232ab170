package clock_tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hyobin/workspace-mcp/internal/server"
	"github.com/hyobin/workspace-mcp/internal/tools/common"
)

// timeFormat renders e.g. "Tuesday, August 26, 2026 03:04 PM KST".
const timeFormat = "Monday, January 02, 2006 03:04 PM MST"

// nowFunc is swapped in tests.
var nowFunc = time.Now

// RegisterClockTools registers the clock tools with the MCP server.
func RegisterClockTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	currentTimeTool := mcp.NewTool("get_current_time",
		mcp.WithDescription("Get the current date and time"),
	)

	s.AddTool(currentTimeTool, common.InstrumentedToolHandler("get_current_time", sc, handleGetCurrentTime))

	return nil
}

func handleGetCurrentTime(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(nowFunc().Format(timeFormat)), nil
}
