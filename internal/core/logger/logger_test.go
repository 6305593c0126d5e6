package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithOptions_WritesRotatedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	l, cleanup := NewWithOptions(Options{
		Level:  "info",
		JSON:   true,
		Rotate: FileRotate{Enable: true, Filename: file, MaxSizeMB: 1},
	})
	l.Info("employee created", zap.Int64("id", 1))
	l.Debug("filtered out")
	cleanup()

	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"msg":"employee created"`) || !strings.Contains(out, `"id":1`) {
		t.Fatalf("expected json entry in log file, got %q", out)
	}
	if strings.Contains(out, "filtered out") {
		t.Fatalf("debug entry should be filtered at info level")
	}
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	l, cleanup := New("nonsense", false)
	defer cleanup()
	if !l.Core().Enabled(zapcore.InfoLevel) || l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected info level fallback")
	}
}

func TestToStdLogger(t *testing.T) {
	l, cleanup := New("info", true)
	defer cleanup()
	if ToStdLogger(l, zapcore.ErrorLevel) == nil {
		t.Fatalf("expected std logger")
	}
}
