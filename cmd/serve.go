package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/hyobin/workspace-mcp/internal/calendar"
	"github.com/hyobin/workspace-mcp/internal/config"
	"github.com/hyobin/workspace-mcp/internal/gmail"
	"github.com/hyobin/workspace-mcp/internal/google"
	"github.com/hyobin/workspace-mcp/internal/instrumentation"
	"github.com/hyobin/workspace-mcp/internal/logging"
	"github.com/hyobin/workspace-mcp/internal/server"
	"github.com/hyobin/workspace-mcp/internal/tools/calendar_tools"
	"github.com/hyobin/workspace-mcp/internal/tools/clock_tools"
	"github.com/hyobin/workspace-mcp/internal/tools/gmail_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: false)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		envFile        string
		logFile        string
		debugMode      bool
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server exposing Gmail and Google
Calendar tools over stdio.

Credentials come from the environment or a .env file:
  GOOGLE_APP_CLIENT_ID      OAuth2 client ID
  GOOGLE_APP_CLIENT_SECRET  OAuth2 client secret
  GOOGLE_APP_REFRESH_TOKEN  Refresh token for the delegated account

Because stdout carries the protocol, logs go to a file (--log-file or
WORKSPACE_MCP_LOG_FILE) and metrics to a dedicated HTTP port.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			return runServe(envFile, logFile, debugMode, metricsConfig)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to a .env file with credentials (default: ./.env when present)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Log file path. Can also use WORKSPACE_MCP_LOG_FILE env var. Empty disables logging.")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", false, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(envFile, logFile string, debugMode bool, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	if logFile == "" {
		logFile = cfg.LogFile
	}
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	logger := logging.NewFileLogger(logFile, level)

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled && os.Getenv("METRICS_ENABLED") == "true" {
		metricsConfig.Enabled = true
	}
	if metricsConfig.Addr == server.DefaultMetricsAddr {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version
	instrConfig.Enabled = instrConfig.Enabled || metricsConfig.Enabled
	if err := instrConfig.Validate(); err != nil {
		return err
	}

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Error("instrumentation shutdown failed", logging.Err(err))
		}
	}()

	// Start the metrics server when the Prometheus exporter is active;
	// the otlp and stdout exporters push on their own.
	var metricsServer *server.MetricsServer
	if provider.Enabled() && instrConfig.MetricsExporter == instrumentation.ExporterPrometheus {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			logger.Info("metrics server started", "addr", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	// One authenticated HTTP client backs both Google services.
	httpClient := google.NewHTTPClient(shutdownCtx, google.Credentials{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RefreshToken: cfg.RefreshToken,
	})

	gmailClient, err := gmail.NewClient(shutdownCtx,
		logging.WithService(logger, instrumentation.ServiceGmail),
		provider.Metrics(),
		option.WithHTTPClient(httpClient))
	if err != nil {
		return fmt.Errorf("failed to create Gmail client: %w", err)
	}

	calendarClient, err := calendar.NewClient(shutdownCtx, cfg.Timezone,
		logging.WithService(logger, instrumentation.ServiceCalendar),
		provider.Metrics(),
		option.WithHTTPClient(httpClient))
	if err != nil {
		return fmt.Errorf("failed to create Calendar client: %w", err)
	}

	serverContext := server.NewServerContext(shutdownCtx,
		server.WithGmail(gmailClient),
		server.WithCalendar(calendarClient),
		server.WithLogger(logger),
		server.WithMetrics(provider.Metrics()),
	)
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown failed", logging.Err(err))
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			logger.Error("server context shutdown failed", logging.Err(err))
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("workspace-mcp", version,
		mcpserver.WithToolCapabilities(true),
	)

	if err := registerAllTools(mcpSrv, serverContext); err != nil {
		return err
	}

	logger.Info("starting MCP server",
		"transport", "stdio",
		"version", version,
		"timezone", cfg.Timezone,
	)

	return runStdioServer(shutdownCtx, mcpSrv, logger)
}

func runStdioServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, logger *slog.Logger) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return nil
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("server stopped with error: %w", err)
		}
		return nil
	}
}

// registerAllTools registers the full tool catalogue in its canonical
// order: clock, then Gmail, then Calendar.
func registerAllTools(mcpSrv *mcpserver.MCPServer, sc *server.ServerContext) error {
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Clock",
			register: func() error {
				return clock_tools.RegisterClockTools(mcpSrv, sc)
			},
		},
		{
			name: "Gmail",
			register: func() error {
				return gmail_tools.RegisterGmailTools(mcpSrv, sc)
			},
		},
		{
			name: "Calendar",
			register: func() error {
				return calendar_tools.RegisterCalendarTools(mcpSrv, sc)
			},
		},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s tools: %w", reg.name, err)
		}
	}

	return nil
}
