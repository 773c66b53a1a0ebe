package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFrom(ctx); got != "req-123" {
		t.Errorf("Expected request id 'req-123', got '%s'", got)
	}
}

func TestRequestIDAbsent(t *testing.T) {
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Errorf("Expected empty request id, got '%s'", got)
	}

	var ctx context.Context
	if got := RequestIDFrom(ctx); got != "" {
		t.Errorf("Expected empty request id for nil context, got '%s'", got)
	}
}

func TestInitLoggingWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	InitLogging(path, "debug")

	ctx := WithRequestID(context.Background(), "req-123")
	DebugLog(ctx, "export elapsed: %s", "1s")
	InfoLog(ctx, "plain message")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "export elapsed: 1s") {
		t.Errorf("Expected formatted debug entry in log file, got: %s", out)
	}
	if !strings.Contains(out, "req-123") {
		t.Errorf("Expected request id in log file, got: %s", out)
	}
}
