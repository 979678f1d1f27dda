package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewHonoursLevelAndFormat(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, Config{Level: "warn", Format: "json"})

	l.Info("dropped")
	l.Warn("kept", "key", "value")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one log line, got %q", out.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "kept" || entry["key"] != "value" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestFromContextAddsRequestID(t *testing.T) {
	var out bytes.Buffer
	base := New(&out, Config{Format: "text"})

	FromContext(context.Background(), base).Info("no id")
	if strings.Contains(out.String(), "request_id") {
		t.Fatalf("unexpected request_id without context value: %q", out.String())
	}

	ctx := ContextWithRequestID(context.Background(), "req-42")
	FromContext(ctx, base).Info("with id")
	if !strings.Contains(out.String(), "request_id=req-42") {
		t.Fatalf("expected request id in output, got %q", out.String())
	}
	if RequestIDFromContext(ctx) != "req-42" {
		t.Fatalf("request id not retrievable from context")
	}
}
