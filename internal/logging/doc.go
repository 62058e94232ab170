// Package logging provides structured logging helpers built on log/slog.
//
// It defines the shared attribute keys and constructor functions used
// across the codebase, plus a file-backed logger for the stdio
// transport, where stdout belongs to the protocol and log writes must
// never fail a request.
package logging
