package gmail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/hyobin/workspace-mcp/internal/instrumentation"
)

// detailFetchLimit bounds how many per-message Get calls run at once
// when expanding a listing into full message details.
const detailFetchLimit = 5

// Client wraps the Gmail Users service for a single delegated account.
type Client struct {
	users   *gmail.UsersService
	logger  *slog.Logger
	metrics *instrumentation.Metrics
}

// NewClient creates a Gmail client from Google API client options.
// Production callers pass option.WithHTTPClient with an authenticated
// client; tests pass option.WithEndpoint and option.WithoutAuthentication.
// Logger and metrics may be nil.
func NewClient(ctx context.Context, logger *slog.Logger, metrics *instrumentation.Metrics, opts ...option.ClientOption) (*Client, error) {
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		users:   svc.Users,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// ListMessages lists up to maxResults messages matching query and fetches
// the full payload of each. The returned slice preserves the listing
// order even though detail fetches run concurrently.
func (c *Client) ListMessages(ctx context.Context, query string, maxResults int64) ([]MessageDetail, error) {
	start := time.Now()
	req := c.users.Messages.List("me").MaxResults(maxResults)
	if query != "" {
		req = req.Q(query)
	}
	res, err := req.Context(ctx).Do()
	c.recordOperation(ctx, "list", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	c.logger.Debug("listed messages", "query", query, "count", len(res.Messages))

	details := make([]MessageDetail, len(res.Messages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailFetchLimit)

	for i, m := range res.Messages {
		g.Go(func() error {
			getStart := time.Now()
			full, err := c.users.Messages.Get("me", m.Id).Format("full").Context(gctx).Do()
			c.recordOperation(ctx, "get", getStart, err)
			if err != nil {
				return fmt.Errorf("failed to get message %s: %w", m.Id, err)
			}
			details[i] = MessageDetail{
				ID:      full.Id,
				Subject: HeaderValue(full, "Subject"),
				From:    HeaderValue(full, "From"),
				Date:    HeaderValue(full, "Date"),
				Body:    BodyText(full.Payload),
				Labels:  full.LabelIds,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

// SendMessage encodes and sends an email, returning the assigned
// message ID.
func (c *Client) SendMessage(ctx context.Context, msg OutgoingMessage) (string, error) {
	start := time.Now()
	sent, err := c.users.Messages.Send("me", &gmail.Message{
		Raw: EncodeRawMessage(msg),
	}).Context(ctx).Do()
	c.recordOperation(ctx, "send", start, err)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	c.logger.Debug("sent message", "id", sent.Id, "to", msg.To)

	return sent.Id, nil
}

// ModifyLabels adds and removes label IDs on a message and returns the
// message ID reported by the API.
func (c *Client) ModifyLabels(ctx context.Context, id string, add, remove []string) (string, error) {
	start := time.Now()
	res, err := c.users.Messages.Modify("me", id, &gmail.ModifyMessageRequest{
		AddLabelIds:    add,
		RemoveLabelIds: remove,
	}).Context(ctx).Do()
	c.recordOperation(ctx, "modify", start, err)
	if err != nil {
		return "", fmt.Errorf("failed to modify message %s: %w", id, err)
	}

	c.logger.Debug("modified message labels", "id", res.Id, "added", len(add), "removed", len(remove))

	return res.Id, nil
}

func (c *Client) recordOperation(ctx context.Context, operation string, start time.Time, err error) {
	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	c.metrics.RecordGoogleAPIOperation(ctx, instrumentation.ServiceGmail, operation, status, time.Since(start))
}
