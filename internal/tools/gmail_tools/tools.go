package gmail_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hyobin/workspace-mcp/internal/server"
	"github.com/hyobin/workspace-mcp/internal/tools/common"
)

// defaultMaxResults caps listings when the caller does not ask for a
// specific amount.
const defaultMaxResults = 10

// RegisterGmailTools registers all Gmail-related tools with the MCP server.
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listEmailsTool := mcp.NewTool("list_emails",
		mcp.WithDescription("List recent emails from Gmail inbox"),
		mcp.WithNumber("maxResults",
			mcp.DefaultNumber(defaultMaxResults),
			mcp.Description("Maximum number of emails to return (default: 10)"),
		),
		mcp.WithString("query",
			mcp.Description("Gmail search query (optional)"),
		),
	)

	s.AddTool(listEmailsTool, common.InstrumentedToolHandler("list_emails", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListEmails(ctx, request, sc)
	}))

	searchEmailsTool := mcp.NewTool("search_emails",
		mcp.WithDescription("Search emails with advanced query"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Gmail search query (e.g., 'from:user@example.com has:attachment')"),
		),
		mcp.WithNumber("maxResults",
			mcp.DefaultNumber(defaultMaxResults),
			mcp.Description("Maximum number of results (default: 10)"),
		),
	)

	s.AddTool(searchEmailsTool, common.InstrumentedToolHandler("search_emails", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSearchEmails(ctx, request, sc)
	}))

	sendEmailTool := mcp.NewTool("send_email",
		mcp.WithDescription("Send a new email"),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Recipient email address"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Email subject"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Email body (plain text)"),
		),
		mcp.WithString("cc",
			mcp.Description("CC email address (optional)"),
		),
		mcp.WithString("bcc",
			mcp.Description("BCC email address (optional)"),
		),
	)

	s.AddTool(sendEmailTool, common.InstrumentedToolHandler("send_email", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSendEmail(ctx, request, sc)
	}))

	modifyEmailTool := mcp.NewTool("modify_email",
		mcp.WithDescription("Modify email labels (archive, trash, mark read/unread)"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Email message ID"),
		),
		mcp.WithArray("addLabels",
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Description("Label IDs to add to the message"),
		),
		mcp.WithArray("removeLabels",
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Description("Label IDs to remove from the message"),
		),
	)

	s.AddTool(modifyEmailTool, common.InstrumentedToolHandler("modify_email", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleModifyEmail(ctx, request, sc)
	}))

	return nil
}
