package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"log/slog"
)

func TestStructuredHandlerKVOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := newStructuredHandler(handlerConfig{
		level:    slog.LevelInfo,
		writer:   newLineWriter([]io.Writer{buf}),
		format:   formatKV,
		keyOrder: append([]string(nil), defaultKeyOrder...),
	})
	ctx := WithRID(Background(), "rid-123")
	ctx = WithUpdateMeta(ctx, 42, 7, 9)

	log := slog.New(handler).With("component", "game")
	LogEvent(ctx, log, slog.LevelInfo, "fight.advanced",
		slog.String("status", "ok"),
		slog.Int("fight", 2),
	)

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log line")
	}
	tokens := strings.Split(line, " ")
	expected := []string{"ts=", "level=INFO", "component=game", "event=fight.advanced", "status=ok", "rid=rid-123"}
	if len(tokens) < len(expected) {
		t.Fatalf("unexpected token count: %d (%s)", len(tokens), line)
	}
	for i, prefix := range expected {
		if !strings.HasPrefix(tokens[i], prefix) {
			t.Fatalf("token %d = %s, expected prefix %s", i, tokens[i], prefix)
		}
	}
	if !strings.Contains(line, "fight=2") {
		t.Fatalf("expected fight attribute in %s", line)
	}
}

func TestStructuredHandlerJSONOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := newStructuredHandler(handlerConfig{
		level:    slog.LevelInfo,
		writer:   newLineWriter([]io.Writer{buf}),
		format:   formatJSON,
		keyOrder: append([]string(nil), defaultKeyOrder...),
	})
	ctx := WithRID(Background(), "rid-json")

	log := slog.New(handler).With("component", "genai")
	LogEvent(ctx, log, slog.LevelError, "generate.failed",
		slog.String("status", "fail"),
		slog.String("err", "boom"),
	)

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "{") {
		t.Fatalf("expected JSON, got %s", line)
	}
	prefixes := []string{`{"ts":`, `"level":"ERROR"`, `"component":"genai"`, `"event":"generate.failed"`, `"status":"fail"`, `"rid":"rid-json"`}
	pos := -1
	for _, pref := range prefixes {
		idx := strings.Index(line, pref)
		if idx == -1 || idx < pos {
			t.Fatalf("prefix %s not found in order within %s", pref, line)
		}
		pos = idx
	}
}

func TestStructuredHandlerContextEnrichment(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := newStructuredHandler(handlerConfig{
		level:    slog.LevelDebug,
		writer:   newLineWriter([]io.Writer{buf}),
		format:   formatKV,
		keyOrder: append([]string(nil), defaultKeyOrder...),
	})
	ctx := WithUpdateMeta(Background(), 1, 77, -100500)
	ctx = WithHandler(ctx, "draw")

	LogEvent(ctx, slog.New(handler), slog.LevelDebug, "handler.handled")

	line := strings.TrimSpace(buf.String())
	for _, want := range []string{"chat_id=-100500", "user_id=77", "handler=draw"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in %s", want, line)
		}
	}
}

func TestSanitizeLimit(t *testing.T) {
	in := "ку-ка\x00-рі\x7f-ку"
	out := SanitizeLimit(in, 8)
	if strings.ContainsRune(out, 0) || strings.ContainsRune(out, 0x7F) {
		t.Fatalf("control characters survived: %q", out)
	}
	if got := len([]rune(out)); got > 8 {
		t.Fatalf("length %d exceeds limit", got)
	}
}
