package calendar_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hyobin/workspace-mcp/internal/calendar"
	"github.com/hyobin/workspace-mcp/internal/server"
	"github.com/hyobin/workspace-mcp/internal/tools/common"
)

type listEventsArgs struct {
	MaxResults int64  `json:"maxResults"`
	TimeMin    string `json:"timeMin"`
	TimeMax    string `json:"timeMax"`
}

type createEventArgs struct {
	Summary     string   `json:"summary"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Attendees   []string `json:"attendees"`
}

type updateEventArgs struct {
	EventID     string   `json:"eventId"`
	Summary     string   `json:"summary"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Attendees   []string `json:"attendees"`
}

type deleteEventArgs struct {
	EventID string `json:"eventId"`
}

func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := listEventsArgs{MaxResults: defaultMaxResults}
	if err := common.BindArguments(request.Params.Arguments, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	svc := sc.Calendar()
	if svc == nil {
		return mcp.NewToolResultError("Calendar client is not configured"), nil
	}

	if args.TimeMin == "" {
		args.TimeMin = time.Now().UTC().Format(time.RFC3339)
	}

	events, err := svc.ListEvents(ctx, calendar.ListQuery{
		TimeMin:    args.TimeMin,
		TimeMax:    args.TimeMax,
		MaxResults: args.MaxResults,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching calendar events: %v", err)), nil
	}

	out, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching calendar events: %v", err)), nil
	}

	return mcp.NewToolResultText(string(out)), nil
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := createEventArgs{}
	if err := common.BindArguments(request.Params.Arguments, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Summary == "" {
		return mcp.NewToolResultError("'summary' field is required"), nil
	}
	if args.Start == "" {
		return mcp.NewToolResultError("'start' field is required"), nil
	}
	if args.End == "" {
		return mcp.NewToolResultError("'end' field is required"), nil
	}

	svc := sc.Calendar()
	if svc == nil {
		return mcp.NewToolResultError("Calendar client is not configured"), nil
	}

	eventID, err := svc.CreateEvent(ctx, calendar.EventInput{
		Summary:     args.Summary,
		Start:       args.Start,
		End:         args.End,
		Location:    args.Location,
		Description: args.Description,
		Attendees:   args.Attendees,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error creating event: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Event created successfully. Event ID: %s", eventID)), nil
}

func handleUpdateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := updateEventArgs{}
	if err := common.BindArguments(request.Params.Arguments, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.EventID == "" {
		return mcp.NewToolResultError("'eventId' field is required"), nil
	}

	svc := sc.Calendar()
	if svc == nil {
		return mcp.NewToolResultError("Calendar client is not configured"), nil
	}

	eventID, err := svc.PatchEvent(ctx, args.EventID, calendar.EventPatch{
		Summary:     args.Summary,
		Start:       args.Start,
		End:         args.End,
		Location:    args.Location,
		Description: args.Description,
		Attendees:   args.Attendees,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error updating event: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Event updated successfully. Event ID: %s", eventID)), nil
}

func handleDeleteEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := deleteEventArgs{}
	if err := common.BindArguments(request.Params.Arguments, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.EventID == "" {
		return mcp.NewToolResultError("'eventId' field is required"), nil
	}

	svc := sc.Calendar()
	if svc == nil {
		return mcp.NewToolResultError("Calendar client is not configured"), nil
	}

	if err := svc.DeleteEvent(ctx, args.EventID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error deleting event: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Event deleted successfully. Event ID: %s", args.EventID)), nil
}
