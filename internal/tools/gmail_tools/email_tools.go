package gmail_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hyobin/workspace-mcp/internal/gmail"
	"github.com/hyobin/workspace-mcp/internal/server"
	"github.com/hyobin/workspace-mcp/internal/tools/common"
)

type listEmailsArgs struct {
	MaxResults int64  `json:"maxResults"`
	Query      string `json:"query"`
}

type searchEmailsArgs struct {
	Query      string `json:"query"`
	MaxResults int64  `json:"maxResults"`
}

type sendEmailArgs struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Cc      string `json:"cc"`
	Bcc     string `json:"bcc"`
}

type modifyEmailArgs struct {
	ID           string   `json:"id"`
	AddLabels    []string `json:"addLabels"`
	RemoveLabels []string `json:"removeLabels"`
}

// searchedMessage is the search_emails output shape. Unlike the listing
// view it always carries the labels key, even when the set is empty.
type searchedMessage struct {
	ID      string   `json:"id"`
	Subject string   `json:"subject"`
	From    string   `json:"from"`
	Date    string   `json:"date"`
	Body    string   `json:"body"`
	Labels  []string `json:"labels"`
}

func handleListEmails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := listEmailsArgs{MaxResults: defaultMaxResults}
	if err := common.BindArguments(request.Params.Arguments, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	svc := sc.Gmail()
	if svc == nil {
		return mcp.NewToolResultError("Gmail client is not configured"), nil
	}

	details, err := svc.ListMessages(ctx, args.Query, args.MaxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching emails: %v", err)), nil
	}

	// The listing view omits labels.
	for i := range details {
		details[i].Labels = nil
	}

	out, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching emails: %v", err)), nil
	}

	return mcp.NewToolResultText(string(out)), nil
}

func handleSearchEmails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := searchEmailsArgs{MaxResults: defaultMaxResults}
	if err := common.BindArguments(request.Params.Arguments, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	svc := sc.Gmail()
	if svc == nil {
		return mcp.NewToolResultError("Gmail client is not configured"), nil
	}

	details, err := svc.ListMessages(ctx, args.Query, args.MaxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching emails: %v", err)), nil
	}

	results := make([]searchedMessage, 0, len(details))
	for _, d := range details {
		labels := d.Labels
		if labels == nil {
			labels = []string{}
		}
		results = append(results, searchedMessage{
			ID:      d.ID,
			Subject: d.Subject,
			From:    d.From,
			Date:    d.Date,
			Body:    d.Body,
			Labels:  labels,
		})
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching emails: %v", err)), nil
	}

	return mcp.NewToolResultText(string(out)), nil
}

func handleSendEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := sendEmailArgs{}
	if err := common.BindArguments(request.Params.Arguments, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.To == "" {
		return mcp.NewToolResultError("'to' field is required"), nil
	}
	if args.Subject == "" {
		return mcp.NewToolResultError("'subject' field is required"), nil
	}
	if args.Body == "" {
		return mcp.NewToolResultError("'body' field is required"), nil
	}

	svc := sc.Gmail()
	if svc == nil {
		return mcp.NewToolResultError("Gmail client is not configured"), nil
	}

	messageID, err := svc.SendMessage(ctx, gmail.OutgoingMessage{
		To:      args.To,
		Subject: args.Subject,
		Body:    args.Body,
		Cc:      args.Cc,
		Bcc:     args.Bcc,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error sending email: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Email sent successfully. Message ID: %s", messageID)), nil
}

func handleModifyEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := modifyEmailArgs{}
	if err := common.BindArguments(request.Params.Arguments, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.ID == "" {
		return mcp.NewToolResultError("'id' field is required"), nil
	}

	svc := sc.Gmail()
	if svc == nil {
		return mcp.NewToolResultError("Gmail client is not configured"), nil
	}

	// Absent label lists become explicit empty sets on the wire.
	add := args.AddLabels
	if add == nil {
		add = []string{}
	}
	remove := args.RemoveLabels
	if remove == nil {
		remove = []string{}
	}

	messageID, err := svc.ModifyLabels(ctx, args.ID, add, remove)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error modifying email: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Email modified successfully. Updated labels for message ID: %s", messageID)), nil
}
