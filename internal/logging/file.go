package logging

import (
	"io"
	"log/slog"
	"os"
)

// bestEffortWriter wraps a writer and swallows write failures. The
// stdio transport owns stdout and stderr feeds the MCP client's
// console, so logs go to a file and a full disk or revoked file handle
// must never fail a tool call.
type bestEffortWriter struct {
	w io.Writer
}

func (b bestEffortWriter) Write(p []byte) (int, error) {
	_, _ = b.w.Write(p)
	return len(p), nil
}

// NewFileLogger returns a slog text logger appending to the file at
// path. When path is empty or the file cannot be opened, the returned
// logger discards all records.
func NewFileLogger(path string, level slog.Level) *slog.Logger {
	if path == "" {
		return slog.New(slog.DiscardHandler)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(bestEffortWriter{w: f}, &slog.HandlerOptions{
		Level: level,
	}))
}
