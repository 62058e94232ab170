// Package cmd implements the command-line interface: the serve command
// that wires configuration, logging, metrics and the Google clients
// into the stdio MCP server, and the version command.
package cmd
