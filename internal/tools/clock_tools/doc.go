// Package clock_tools provides the current-time MCP tool. It exists so
// agents without a reliable clock can anchor relative dates ("tomorrow
// at 3pm") before calling the calendar tools.
package clock_tools
