// Package gmail_tools implements the email MCP tools: listing and
// searching messages, sending plain-text email, and modifying message
// labels. Handler failures surface as error tool results, never as
// protocol errors.
package gmail_tools
