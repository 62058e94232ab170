package gmail

import (
	"encoding/base64"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

// NoBodyPlaceholder is returned when a message payload carries no
// decodable text body.
const NoBodyPlaceholder = "(No body content)"

// EncodeRawMessage builds the RFC 2822 text for an outgoing message and
// encodes it the way the Gmail API expects raw messages: base64url
// without padding.
//
// Header order is fixed: Content-Type, MIME-Version, To, Cc (if set),
// Bcc (if set), Subject. Headers are CRLF-joined and separated from the
// body by a blank line.
func EncodeRawMessage(msg OutgoingMessage) string {
	headers := []string{
		`Content-Type: text/plain; charset="UTF-8"`,
		"MIME-Version: 1.0",
		"To: " + msg.To,
	}

	if msg.Cc != "" {
		headers = append(headers, "Cc: "+msg.Cc)
	}
	if msg.Bcc != "" {
		headers = append(headers, "Bcc: "+msg.Bcc)
	}

	headers = append(headers, "Subject: "+msg.Subject)

	email := strings.Join(headers, "\r\n") + "\r\n\r\n" + msg.Body
	return base64.RawURLEncoding.EncodeToString([]byte(email))
}

// BodyText extracts the plain-text body from a message payload tree.
// It prefers the payload's own body data; otherwise it searches the
// parts depth-first for the first "text/plain" part that carries data.
// It never fails: malformed or absent structure degrades to
// NoBodyPlaceholder.
func BodyText(payload *gmail.MessagePart) string {
	if payload == nil {
		return NoBodyPlaceholder
	}

	if body, ok := decodePartBody(payload); ok {
		return body
	}

	if body, ok := findPlainTextPart(payload.Parts); ok {
		return body
	}

	return NoBodyPlaceholder
}

// findPlainTextPart walks parts depth-first and returns the decoded body
// of the first text/plain part that has data.
func findPlainTextPart(parts []*gmail.MessagePart) (string, bool) {
	for _, part := range parts {
		if part == nil {
			continue
		}
		if part.MimeType == "text/plain" {
			if body, ok := decodePartBody(part); ok {
				return body, true
			}
		}
		if body, ok := findPlainTextPart(part.Parts); ok {
			return body, true
		}
	}
	return "", false
}

func decodePartBody(part *gmail.MessagePart) (string, bool) {
	if part.Body == nil || part.Body.Data == "" {
		return "", false
	}
	decoded, err := decodeBase64(part.Body.Data)
	if err != nil {
		return "", false
	}
	return decoded, true
}

// decodeBase64 decodes Gmail body data, which is base64url encoded with
// or without padding depending on the producer.
func decodeBase64(data string) (string, error) {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return "", err
		}
	}
	return string(decoded), nil
}

// HeaderValue extracts a header value from a Gmail message payload.
// Header names are matched exactly; the first match wins.
func HeaderValue(m *gmail.Message, header string) string {
	if m == nil || m.Payload == nil {
		return ""
	}
	for _, h := range m.Payload.Headers {
		if h.Name == header {
			return h.Value
		}
	}
	return ""
}
