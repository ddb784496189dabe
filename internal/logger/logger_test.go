package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Environments(t *testing.T) {
	for _, env := range []string{"prod", "local", "dev", "docker"} {
		t.Run(env, func(t *testing.T) {
			l, err := NewLogger(env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = l.Sync()
		})
	}
}

func TestNewLogger_UnknownEnv(t *testing.T) {
	if _, err := NewLogger("staging"); err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

func TestNewLogger_LevelOverride(t *testing.T) {
	l, err := NewLogger("prod", "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info must be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn must be enabled at warn level")
	}

	if _, err := NewLogger("prod", "loud"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestContext_RoundTrip(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core).With(zap.String("request_id", "r-1"))

	ctx := ContextWithLogger(context.Background(), l)
	FromContext(ctx).Info("hello")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["request_id"]; got != "r-1" {
		t.Errorf("request_id = %v", got)
	}
}

func TestFromContext_Nop(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected nop logger, got nil")
	}
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ContextWithLogger(context.Background(), zap.New(core).With(zap.String("request_id", "r-2")))

	ctx = WithFields(ctx, zap.Int("batch_size", 3))
	FromContext(ctx).Debug("article")

	fields := logs.All()[0].ContextMap()
	if fields["request_id"] != "r-2" {
		t.Errorf("request_id = %v, want r-2", fields["request_id"])
	}
	if fields["batch_size"] != int64(3) {
		t.Errorf("batch_size = %v, want 3", fields["batch_size"])
	}

	if WithFields(ctx) != ctx {
		t.Error("WithFields without fields should return ctx unchanged")
	}
}

func TestConfigFor(t *testing.T) {
	prod, err := configFor("prod")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prod.Encoding != "json" {
		t.Errorf("prod encoding = %q, want json", prod.Encoding)
	}
	if prod.Sampling != nil {
		t.Error("prod must not sample article logs")
	}

	local, err := configFor("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local.Encoding != "console" {
		t.Errorf("local encoding = %q, want console", local.Encoding)
	}
}
