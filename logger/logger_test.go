package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("normal")

	if err := SetLevel("debug"); err != nil {
		t.Fatal(err)
	}
	if Level() != zapcore.DebugLevel {
		t.Fatalf("unexpected level %s", Level())
	}
	if err := SetLevel("none"); err != nil {
		t.Fatal(err)
	}
	if Level().Enabled(zapcore.ErrorLevel) {
		t.Fatal("errors should be disabled")
	}
	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected error on invalid level")
	}
}

func TestSet(t *testing.T) {
	Set(zaptest.NewLogger(t))
	WarningLogger.Debugw("dropped declaration", "property", "foo-bar")
	Set(nil)
	WarningLogger.Warn("discarded")
}
