package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))
	if attr.Key != KeyError {
		t.Errorf("key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("value = %q, want %q", attr.Value.String(), "boom")
	}
}

func TestErr_NilIsOmitted(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("operation done", Err(nil))

	if strings.Contains(buf.String(), KeyError) {
		t.Errorf("nil error should be omitted: %s", buf.String())
	}
}

func TestWithTool(t *testing.T) {
	var buf bytes.Buffer
	logger := WithTool(slog.New(slog.NewTextHandler(&buf, nil)), "list_emails")

	logger.Info("invoked")

	if !strings.Contains(buf.String(), "tool=list_emails") {
		t.Errorf("missing tool attribute: %s", buf.String())
	}
}

func TestWithService(t *testing.T) {
	var buf bytes.Buffer
	logger := WithService(slog.New(slog.NewTextHandler(&buf, nil)), "gmail")

	logger.Info("request")

	if !strings.Contains(buf.String(), "service=gmail") {
		t.Errorf("missing service attribute: %s", buf.String())
	}
}

func TestAttrHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("call",
		Tool("send_email"),
		Operation("send"),
		Status(StatusSuccess),
		Duration(0.25))

	out := buf.String()
	for _, want := range []string{
		"tool=send_email",
		"operation=send",
		"status=success",
		"duration=0.25",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}
