package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/hyobin/workspace-mcp/internal/instrumentation"
)

// primaryCalendarID is the only calendar this server operates on.
const primaryCalendarID = "primary"

// Client wraps the Google Calendar service for the primary calendar of
// a single delegated account.
type Client struct {
	svc      *calendar.Service
	timezone string
	logger   *slog.Logger
	metrics  *instrumentation.Metrics
}

// NewClient creates a Calendar client from Google API client options.
// timezone is the IANA zone paired with event datetimes on create and
// update. Logger and metrics may be nil.
func NewClient(ctx context.Context, timezone string, logger *slog.Logger, metrics *instrumentation.Metrics, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		svc:      svc,
		timezone: timezone,
		logger:   logger,
		metrics:  metrics,
	}, nil
}

// ListEvents lists upcoming events on the primary calendar, expanded to
// single instances and ordered by start time.
func (c *Client) ListEvents(ctx context.Context, q ListQuery) ([]EventSummary, error) {
	call := c.svc.Events.List(primaryCalendarID).
		TimeMin(q.TimeMin).
		MaxResults(q.MaxResults).
		SingleEvents(true).
		OrderBy("startTime")

	if q.TimeMax != "" {
		call = call.TimeMax(q.TimeMax)
	}

	start := time.Now()
	events, err := call.Context(ctx).Do()
	c.recordOperation(ctx, "list", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	c.logger.Debug("listed events", "count", len(events.Items))

	summaries := make([]EventSummary, 0, len(events.Items))
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event))
	}

	return summaries, nil
}

// CreateEvent inserts a new event on the primary calendar and returns
// the assigned event ID.
func (c *Client) CreateEvent(ctx context.Context, input EventInput) (string, error) {
	event := &calendar.Event{
		Summary:     input.Summary,
		Location:    input.Location,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.Start,
			TimeZone: c.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End,
			TimeZone: c.timezone,
		},
	}
	for _, email := range input.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	start := time.Now()
	created, err := c.svc.Events.Insert(primaryCalendarID, event).Context(ctx).Do()
	c.recordOperation(ctx, "insert", start, err)
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	c.logger.Debug("created event", "id", created.Id)

	return created.Id, nil
}

// PatchEvent applies a partial update to an event and returns the event
// ID reported by the API. Only fields set in patch reach the wire.
func (c *Client) PatchEvent(ctx context.Context, eventID string, patch EventPatch) (string, error) {
	start := time.Now()
	updated, err := c.svc.Events.Patch(primaryCalendarID, eventID, buildPatch(patch, c.timezone)).Context(ctx).Do()
	c.recordOperation(ctx, "patch", start, err)
	if err != nil {
		return "", fmt.Errorf("failed to update event %s: %w", eventID, err)
	}

	c.logger.Debug("updated event", "id", updated.Id)

	return updated.Id, nil
}

// DeleteEvent removes an event from the primary calendar.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	start := time.Now()
	err := c.svc.Events.Delete(primaryCalendarID, eventID).Context(ctx).Do()
	c.recordOperation(ctx, "delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}

	c.logger.Debug("deleted event", "id", eventID)

	return nil
}

// buildPatch converts an EventPatch into the sparse API event. Zero
// values stay off the struct so the JSON encoder omits them and the
// server leaves those fields untouched.
func buildPatch(patch EventPatch, timezone string) *calendar.Event {
	event := &calendar.Event{}

	if patch.Summary != "" {
		event.Summary = patch.Summary
	}
	if patch.Location != "" {
		event.Location = patch.Location
	}
	if patch.Description != "" {
		event.Description = patch.Description
	}
	if patch.Start != "" {
		event.Start = &calendar.EventDateTime{
			DateTime: patch.Start,
			TimeZone: timezone,
		}
	}
	if patch.End != "" {
		event.End = &calendar.EventDateTime{
			DateTime: patch.End,
			TimeZone: timezone,
		}
	}
	for _, email := range patch.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	return event
}

func toEventSummary(event *calendar.Event) EventSummary {
	return EventSummary{
		ID:       event.Id,
		Summary:  event.Summary,
		Start:    toEventTime(event.Start),
		End:      toEventTime(event.End),
		Location: event.Location,
	}
}

func toEventTime(dt *calendar.EventDateTime) *EventTime {
	if dt == nil {
		return nil
	}
	return &EventTime{
		DateTime: dt.DateTime,
		Date:     dt.Date,
		TimeZone: dt.TimeZone,
	}
}

func (c *Client) recordOperation(ctx context.Context, operation string, start time.Time, err error) {
	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	c.metrics.RecordGoogleAPIOperation(ctx, instrumentation.ServiceCalendar, operation, status, time.Since(start))
}
