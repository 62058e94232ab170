// Package server holds the shared runtime state of the MCP server.
//
// ServerContext carries the Google service clients behind small
// interfaces (so tool tests can substitute fakes), the logger and the
// metrics recorder. It is assembled once at startup and treated as
// read-only by the tool handlers. The package also provides the
// dedicated Prometheus metrics HTTP server.
package server
