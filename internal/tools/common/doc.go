// Package common provides shared utilities for MCP tool implementations:
// argument decoding and the instrumentation wrapper applied to every
// registered tool handler.
package common
