package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hyobin/workspace-mcp/internal/calendar"
	"github.com/hyobin/workspace-mcp/internal/gmail"
	"github.com/hyobin/workspace-mcp/internal/instrumentation"
)

// GmailService is the Gmail surface the email tool handlers depend on.
// *gmail.Client implements it; tests substitute fakes.
type GmailService interface {
	ListMessages(ctx context.Context, query string, maxResults int64) ([]gmail.MessageDetail, error)
	SendMessage(ctx context.Context, msg gmail.OutgoingMessage) (string, error)
	ModifyLabels(ctx context.Context, id string, add, remove []string) (string, error)
}

// CalendarService is the Calendar surface the event tool handlers
// depend on. *calendar.Client implements it; tests substitute fakes.
type CalendarService interface {
	ListEvents(ctx context.Context, q calendar.ListQuery) ([]calendar.EventSummary, error)
	CreateEvent(ctx context.Context, input calendar.EventInput) (string, error)
	PatchEvent(ctx context.Context, eventID string, patch calendar.EventPatch) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// ServerContext holds the shared state for the MCP server: the Google
// service clients, logger and metrics recorder. All fields are set at
// construction and read-only afterwards; only the shutdown flag is
// guarded.
type ServerContext struct {
	ctx      context.Context
	cancel   context.CancelFunc
	gmail    GmailService
	calendar CalendarService
	logger   *slog.Logger
	metrics  *instrumentation.Metrics

	mu       sync.RWMutex
	shutdown bool
}

// Option configures a ServerContext during construction.
type Option func(*ServerContext)

// WithGmail sets the Gmail service.
func WithGmail(svc GmailService) Option {
	return func(sc *ServerContext) {
		sc.gmail = svc
	}
}

// WithCalendar sets the Calendar service.
func WithCalendar(svc CalendarService) Option {
	return func(sc *ServerContext) {
		sc.calendar = svc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(sc *ServerContext) {
		sc.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(metrics *instrumentation.Metrics) Option {
	return func(sc *ServerContext) {
		sc.metrics = metrics
	}
}

// NewServerContext creates a new server context.
func NewServerContext(ctx context.Context, opts ...Option) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(sc)
	}

	if sc.logger == nil {
		sc.logger = slog.New(slog.DiscardHandler)
	}

	return sc
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Gmail returns the Gmail service, or nil when not configured.
func (sc *ServerContext) Gmail() GmailService {
	return sc.gmail
}

// Calendar returns the Calendar service, or nil when not configured.
func (sc *ServerContext) Calendar() CalendarService {
	return sc.calendar
}

// Logger returns the server logger. Never nil.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// Metrics returns the metrics recorder. May be nil; the recorder's
// methods tolerate a nil receiver.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
