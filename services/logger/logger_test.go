package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WarnLevel, &buf)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("messages below warn level were written: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Fatalf("expected warn and error lines, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug": DebugLevel,
		"warn":  WarnLevel,
		"error": ErrorLevel,
		"":      InfoLevel,
		"trace": InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
