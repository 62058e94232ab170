package calendar_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hyobin/workspace-mcp/internal/server"
	"github.com/hyobin/workspace-mcp/internal/tools/common"
)

// defaultMaxResults caps event listings when the caller does not ask
// for a specific amount.
const defaultMaxResults = 10

// RegisterCalendarTools registers all Calendar-related tools with the MCP server.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listEventsTool := mcp.NewTool("list_events",
		mcp.WithDescription("List calendar events. You can specify timeMin and timeMax parameters to fetch events from past dates or within a specific date range. Both parameters accept ISO format datetime strings."),
		mcp.WithNumber("maxResults",
			mcp.DefaultNumber(defaultMaxResults),
			mcp.Description("Maximum number of events to return (default: 10)"),
		),
		mcp.WithString("timeMin",
			mcp.Description("Earliest event time, RFC3339 (default: now)"),
		),
		mcp.WithString("timeMax",
			mcp.Description("Latest event time, RFC3339 (optional)"),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandler("list_events", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListEvents(ctx, request, sc)
	}))

	createEventTool := mcp.NewTool("create_event",
		mcp.WithDescription("Create a new calendar event"),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Event title"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Event start time, RFC3339"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("Event end time, RFC3339"),
		),
		mcp.WithString("location",
			mcp.Description("Event location (optional)"),
		),
		mcp.WithString("description",
			mcp.Description("Event description (optional)"),
		),
		mcp.WithArray("attendees",
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Description("Attendee email addresses (optional)"),
		),
	)

	s.AddTool(createEventTool, common.InstrumentedToolHandler("create_event", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCreateEvent(ctx, request, sc)
	}))

	updateEventTool := mcp.NewTool("update_event",
		mcp.WithDescription("Update an existing calendar event. Only the provided fields are changed."),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("ID of the event to update"),
		),
		mcp.WithString("summary",
			mcp.Description("New event title (optional)"),
		),
		mcp.WithString("start",
			mcp.Description("New start time, RFC3339 (optional)"),
		),
		mcp.WithString("end",
			mcp.Description("New end time, RFC3339 (optional)"),
		),
		mcp.WithString("location",
			mcp.Description("New location (optional)"),
		),
		mcp.WithString("description",
			mcp.Description("New description (optional)"),
		),
		mcp.WithArray("attendees",
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Description("Replacement attendee email addresses (optional)"),
		),
	)

	s.AddTool(updateEventTool, common.InstrumentedToolHandler("update_event", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleUpdateEvent(ctx, request, sc)
	}))

	deleteEventTool := mcp.NewTool("delete_event",
		mcp.WithDescription("Delete a calendar event"),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("ID of the event to delete"),
		),
	)

	s.AddTool(deleteEventTool, common.InstrumentedToolHandler("delete_event", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDeleteEvent(ctx, request, sc)
	}))

	return nil
}
