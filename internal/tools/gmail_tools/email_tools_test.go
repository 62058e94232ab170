package gmail_tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hyobin/workspace-mcp/internal/gmail"
	"github.com/hyobin/workspace-mcp/internal/server"
)

type fakeGmail struct {
	listQuery      string
	listMaxResults int64
	listResult     []gmail.MessageDetail
	listErr        error

	sentMsg gmail.OutgoingMessage
	sendID  string
	sendErr error

	modifyID     string
	modifyAdd    []string
	modifyRemove []string
	modifyErr    error
}

func (f *fakeGmail) ListMessages(_ context.Context, query string, maxResults int64) ([]gmail.MessageDetail, error) {
	f.listQuery = query
	f.listMaxResults = maxResults
	return f.listResult, f.listErr
}

func (f *fakeGmail) SendMessage(_ context.Context, msg gmail.OutgoingMessage) (string, error) {
	f.sentMsg = msg
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.sendID, nil
}

func (f *fakeGmail) ModifyLabels(_ context.Context, id string, add, remove []string) (string, error) {
	f.modifyID = id
	f.modifyAdd = add
	f.modifyRemove = remove
	if f.modifyErr != nil {
		return "", f.modifyErr
	}
	return id, nil
}

func newTestContext(t *testing.T, svc server.GmailService) *server.ServerContext {
	t.Helper()

	sc := server.NewServerContext(context.Background(), server.WithGmail(svc))
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return tc.Text
}

func TestHandleListEmails_Defaults(t *testing.T) {
	fake := &fakeGmail{
		listResult: []gmail.MessageDetail{
			{ID: "A", Subject: "first", From: "a@example.com", Date: "d1", Body: "b1", Labels: []string{"INBOX"}},
			{ID: "B", Subject: "second", From: "b@example.com", Date: "d2", Body: "b2"},
		},
	}
	sc := newTestContext(t, fake)

	result, err := handleListEmails(context.Background(), callRequest(nil), sc)
	if err != nil {
		t.Fatalf("handleListEmails() error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	if fake.listMaxResults != 10 {
		t.Errorf("maxResults = %d, want default 10", fake.listMaxResults)
	}
	if fake.listQuery != "" {
		t.Errorf("query = %q, want empty", fake.listQuery)
	}

	out := resultText(t, result)
	if !strings.Contains(out, `"id": "A"`) {
		t.Errorf("output missing first message: %s", out)
	}
	if strings.Contains(out, "labels") {
		t.Errorf("listing output should omit labels: %s", out)
	}
}

func TestHandleListEmails_PassesArguments(t *testing.T) {
	fake := &fakeGmail{}
	sc := newTestContext(t, fake)

	req := callRequest(map[string]any{"maxResults": float64(5), "query": "is:unread"})
	result, err := handleListEmails(context.Background(), req, sc)
	if err != nil {
		t.Fatalf("handleListEmails() error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	if fake.listMaxResults != 5 {
		t.Errorf("maxResults = %d, want 5", fake.listMaxResults)
	}
	if fake.listQuery != "is:unread" {
		t.Errorf("query = %q, want %q", fake.listQuery, "is:unread")
	}
}

func TestHandleListEmails_FetchError(t *testing.T) {
	fake := &fakeGmail{listErr: errors.New("quota exceeded")}
	sc := newTestContext(t, fake)

	result, err := handleListEmails(context.Background(), callRequest(nil), sc)
	if err != nil {
		t.Fatalf("handleListEmails() error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}

	out := resultText(t, result)
	if !strings.HasPrefix(out, "Error fetching emails: ") {
		t.Errorf("error text = %q, want prefix %q", out, "Error fetching emails: ")
	}
}

func TestHandleListEmails_NoClient(t *testing.T) {
	sc := newTestContext(t, nil)

	result, err := handleListEmails(context.Background(), callRequest(nil), sc)
	if err != nil {
		t.Fatalf("handleListEmails() error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(t, result); got != "Gmail client is not configured" {
		t.Errorf("error text = %q", got)
	}
}

func TestHandleSearchEmails_RequiresQuery(t *testing.T) {
	fake := &fakeGmail{}
	sc := newTestContext(t, fake)

	result, err := handleSearchEmails(context.Background(), callRequest(nil), sc)
	if err != nil {
		t.Fatalf("handleSearchEmails() error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(t, result); got != "query is required" {
		t.Errorf("error text = %q, want %q", got, "query is required")
	}
	if fake.listQuery != "" || fake.listMaxResults != 0 {
		t.Error("service should not be called without a query")
	}
}

func TestHandleSearchEmails_AlwaysIncludesLabels(t *testing.T) {
	fake := &fakeGmail{
		listResult: []gmail.MessageDetail{
			{ID: "A", Subject: "s", Body: "b"}, // nil labels
		},
	}
	sc := newTestContext(t, fake)

	req := callRequest(map[string]any{"query": "from:a@example.com"})
	result, err := handleSearchEmails(context.Background(), req, sc)
	if err != nil {
		t.Fatalf("handleSearchEmails() error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	out := resultText(t, result)
	if !strings.Contains(out, `"labels": []`) {
		t.Errorf("search output should carry an empty labels array: %s", out)
	}
	if fake.listQuery != "from:a@example.com" {
		t.Errorf("query = %q", fake.listQuery)
	}
	if fake.listMaxResults != 10 {
		t.Errorf("maxResults = %d, want default 10", fake.listMaxResults)
	}
}

func TestHandleSearchEmails_FetchError(t *testing.T) {
	fake := &fakeGmail{listErr: errors.New("backend down")}
	sc := newTestContext(t, fake)

	req := callRequest(map[string]any{"query": "anything"})
	result, err := handleSearchEmails(context.Background(), req, sc)
	if err != nil {
		t.Fatalf("handleSearchEmails() error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(t, result); !strings.HasPrefix(got, "Error fetching emails: ") {
		t.Errorf("error text = %q, want prefix %q", got, "Error fetching emails: ")
	}
}

func TestHandleSendEmail(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		wantErr  string
		wantText string
	}{
		{
			name:    "missing to",
			args:    map[string]any{"subject": "s", "body": "b"},
			wantErr: "'to' field is required",
		},
		{
			name:    "missing subject",
			args:    map[string]any{"to": "x@example.com", "body": "b"},
			wantErr: "'subject' field is required",
		},
		{
			name:    "missing body",
			args:    map[string]any{"to": "x@example.com", "subject": "s"},
			wantErr: "'body' field is required",
		},
		{
			name:     "success",
			args:     map[string]any{"to": "x@example.com", "subject": "s", "body": "b", "cc": "c@example.com"},
			wantText: "Email sent successfully. Message ID: sent-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeGmail{sendID: "sent-1"}
			sc := newTestContext(t, fake)

			result, err := handleSendEmail(context.Background(), callRequest(tt.args), sc)
			if err != nil {
				t.Fatalf("handleSendEmail() error: %v", err)
			}

			if tt.wantErr != "" {
				if !result.IsError {
					t.Fatal("expected error result")
				}
				if got := resultText(t, result); got != tt.wantErr {
					t.Errorf("error text = %q, want %q", got, tt.wantErr)
				}
				return
			}

			if result.IsError {
				t.Fatalf("unexpected error result: %s", resultText(t, result))
			}
			if got := resultText(t, result); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
			if fake.sentMsg.Cc != "c@example.com" {
				t.Errorf("cc = %q, want %q", fake.sentMsg.Cc, "c@example.com")
			}
		})
	}
}

func TestHandleSendEmail_SendError(t *testing.T) {
	fake := &fakeGmail{sendErr: errors.New("rejected")}
	sc := newTestContext(t, fake)

	req := callRequest(map[string]any{"to": "x@example.com", "subject": "s", "body": "b"})
	result, err := handleSendEmail(context.Background(), req, sc)
	if err != nil {
		t.Fatalf("handleSendEmail() error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(t, result); got != "Error sending email: rejected" {
		t.Errorf("error text = %q", got)
	}
}

func TestHandleModifyEmail(t *testing.T) {
	fake := &fakeGmail{}
	sc := newTestContext(t, fake)

	req := callRequest(map[string]any{
		"id":           "msg-7",
		"addLabels":    []any{"STARRED"},
		"removeLabels": []any{"UNREAD"},
	})
	result, err := handleModifyEmail(context.Background(), req, sc)
	if err != nil {
		t.Fatalf("handleModifyEmail() error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	want := "Email modified successfully. Updated labels for message ID: msg-7"
	if got := resultText(t, result); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	if len(fake.modifyAdd) != 1 || fake.modifyAdd[0] != "STARRED" {
		t.Errorf("addLabels = %v", fake.modifyAdd)
	}
	if len(fake.modifyRemove) != 1 || fake.modifyRemove[0] != "UNREAD" {
		t.Errorf("removeLabels = %v", fake.modifyRemove)
	}
}

func TestHandleModifyEmail_RequiresID(t *testing.T) {
	sc := newTestContext(t, &fakeGmail{})

	result, err := handleModifyEmail(context.Background(), callRequest(nil), sc)
	if err != nil {
		t.Fatalf("handleModifyEmail() error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := resultText(t, result); got != "'id' field is required" {
		t.Errorf("error text = %q", got)
	}
}

func TestHandleModifyEmail_DefaultsEmptyLabelSets(t *testing.T) {
	fake := &fakeGmail{}
	sc := newTestContext(t, fake)

	result, err := handleModifyEmail(context.Background(), callRequest(map[string]any{"id": "msg-1"}), sc)
	if err != nil {
		t.Fatalf("handleModifyEmail() error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	if fake.modifyAdd == nil || len(fake.modifyAdd) != 0 {
		t.Errorf("addLabels = %#v, want empty non-nil slice", fake.modifyAdd)
	}
	if fake.modifyRemove == nil || len(fake.modifyRemove) != 0 {
		t.Errorf("removeLabels = %#v, want empty non-nil slice", fake.modifyRemove)
	}
}
