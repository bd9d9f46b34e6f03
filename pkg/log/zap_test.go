package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_FormatsMessages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}
	ctx := context.Background()

	l.Infof(ctx, "store.Open: loaded %d tasks", 3)
	l.Errorf(ctx, "uc.Add: %v", "boom")
	l.Debug(ctx, "plain")

	entries := logs.AllUntimed()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Message != "store.Open: loaded 3 tasks" || entries[0].Level != zapcore.InfoLevel {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("expected error level, got %s", entries[1].Level)
	}
}

func TestInit_FallsBackToInfo(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "nonsense", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		if l := Init(cfg); l == nil {
			t.Errorf("Init(%+v) returned nil", cfg)
		}
	}
}
