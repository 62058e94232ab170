// Package calendar_tools implements the calendar MCP tools: listing
// upcoming events, creating events, partial updates, and deletion. All
// operations target the primary calendar.
package calendar_tools
