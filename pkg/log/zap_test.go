package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}

	l.Infof(WithRequestID(context.Background(), "req-1"), "hello %s", "world")
	l.Warn(context.Background(), "no id")

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "hello world" || entries[0].ContextMap()["request_id"] != "req-1" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("expected no request id on second entry")
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  ZapConfig
	}{
		{name: "development console", cfg: ZapConfig{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true}},
		{name: "production json", cfg: ZapConfig{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON}},
		{name: "unknown level", cfg: ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if l := Init(tt.cfg); l == nil {
				t.Fatal("expected logger")
			}
		})
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
	if got := RequestIDFromContext(WithRequestID(context.Background(), "abc")); got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
}
