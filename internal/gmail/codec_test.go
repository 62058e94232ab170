package gmail

import (
	"encoding/base64"
	"reflect"
	"strings"
	"testing"

	gmail "google.golang.org/api/gmail/v1"
)

func b64(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func decodeRaw(t *testing.T, raw string) (headers []string, body string) {
	t.Helper()

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("raw message is not unpadded base64url: %v", err)
	}

	parts := strings.SplitN(string(decoded), "\r\n\r\n", 2)
	if len(parts) != 2 {
		t.Fatalf("raw message has no header/body separator: %q", decoded)
	}

	return strings.Split(parts[0], "\r\n"), parts[1]
}

func TestEncodeRawMessage_HeaderOrder(t *testing.T) {
	tests := []struct {
		name        string
		msg         OutgoingMessage
		wantHeaders []string
	}{
		{
			name: "without cc and bcc",
			msg: OutgoingMessage{
				To:      "a@example.com",
				Subject: "Hello",
				Body:    "Hi there",
			},
			wantHeaders: []string{
				`Content-Type: text/plain; charset="UTF-8"`,
				"MIME-Version: 1.0",
				"To: a@example.com",
				"Subject: Hello",
			},
		},
		{
			name: "with cc only",
			msg: OutgoingMessage{
				To:      "a@example.com",
				Subject: "Hello",
				Body:    "Hi there",
				Cc:      "b@example.com",
			},
			wantHeaders: []string{
				`Content-Type: text/plain; charset="UTF-8"`,
				"MIME-Version: 1.0",
				"To: a@example.com",
				"Cc: b@example.com",
				"Subject: Hello",
			},
		},
		{
			name: "with cc and bcc",
			msg: OutgoingMessage{
				To:      "a@example.com",
				Subject: "Hello",
				Body:    "Hi there",
				Cc:      "b@example.com",
				Bcc:     "c@example.com",
			},
			wantHeaders: []string{
				`Content-Type: text/plain; charset="UTF-8"`,
				"MIME-Version: 1.0",
				"To: a@example.com",
				"Cc: b@example.com",
				"Bcc: c@example.com",
				"Subject: Hello",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, body := decodeRaw(t, EncodeRawMessage(tt.msg))
			if !reflect.DeepEqual(headers, tt.wantHeaders) {
				t.Errorf("headers = %q, want %q", headers, tt.wantHeaders)
			}
			if body != tt.msg.Body {
				t.Errorf("body = %q, want %q", body, tt.msg.Body)
			}
		})
	}
}

func TestEncodeRawMessage_RoundTripBody(t *testing.T) {
	msg := OutgoingMessage{
		To:      "x@example.com",
		Subject: "Réunion — détails",
		Body:    "Multi-line body\nwith unicode: 한국어, 日本語\nand symbols: <>&\"",
	}

	_, body := decodeRaw(t, EncodeRawMessage(msg))
	if body != msg.Body {
		t.Errorf("body round-trip mismatch: got %q, want %q", body, msg.Body)
	}
}

func TestBodyText(t *testing.T) {
	tests := []struct {
		name    string
		payload *gmail.MessagePart
		want    string
	}{
		{
			name:    "nil payload",
			payload: nil,
			want:    NoBodyPlaceholder,
		},
		{
			name: "top-level body data",
			payload: &gmail.MessagePart{
				MimeType: "text/plain",
				Body:     &gmail.MessagePartBody{Data: b64("plain body")},
			},
			want: "plain body",
		},
		{
			name: "no body anywhere",
			payload: &gmail.MessagePart{
				MimeType: "multipart/alternative",
				Parts: []*gmail.MessagePart{
					{MimeType: "text/html", Body: &gmail.MessagePartBody{}},
				},
			},
			want: NoBodyPlaceholder,
		},
		{
			name: "first text/plain part wins",
			payload: &gmail.MessagePart{
				MimeType: "multipart/alternative",
				Parts: []*gmail.MessagePart{
					{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: b64("<p>html</p>")}},
					{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: b64("first")}},
					{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: b64("second")}},
				},
			},
			want: "first",
		},
		{
			name: "nested multipart",
			payload: &gmail.MessagePart{
				MimeType: "multipart/mixed",
				Parts: []*gmail.MessagePart{
					{
						MimeType: "multipart/alternative",
						Parts: []*gmail.MessagePart{
							{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: b64("nested body")}},
						},
					},
					{MimeType: "application/pdf", Body: &gmail.MessagePartBody{Data: b64("binary")}},
				},
			},
			want: "nested body",
		},
		{
			name: "undecodable data degrades to placeholder",
			payload: &gmail.MessagePart{
				MimeType: "multipart/alternative",
				Parts: []*gmail.MessagePart{
					{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: "%%%not-base64%%%"}},
				},
			},
			want: NoBodyPlaceholder,
		},
		{
			name: "padded base64url also decodes",
			payload: &gmail.MessagePart{
				Body: &gmail.MessagePartBody{Data: base64.URLEncoding.EncodeToString([]byte("padded"))},
			},
			want: "padded",
		},
		{
			name: "unpadded base64url also decodes",
			payload: &gmail.MessagePart{
				Body: &gmail.MessagePartBody{Data: base64.RawURLEncoding.EncodeToString([]byte("unpadded!"))},
			},
			want: "unpadded!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BodyText(tt.payload); got != tt.want {
				t.Errorf("BodyText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderValue(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "Subject", Value: "first subject"},
				{Name: "Subject", Value: "second subject"},
				{Name: "From", Value: "sender@example.com"},
			},
		},
	}

	tests := []struct {
		name   string
		m      *gmail.Message
		header string
		want   string
	}{
		{"first match wins", msg, "Subject", "first subject"},
		{"present header", msg, "From", "sender@example.com"},
		{"absent header", msg, "Date", ""},
		{"case sensitive", msg, "subject", ""},
		{"nil message", nil, "Subject", ""},
		{"nil payload", &gmail.Message{}, "Subject", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeaderValue(tt.m, tt.header); got != tt.want {
				t.Errorf("HeaderValue(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
