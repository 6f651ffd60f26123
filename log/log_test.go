package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func captureLogger(level slog.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewWithHandler(h), &buf
}

func TestModuleAttribute(t *testing.T) {
	l, buf := captureLogger(slog.LevelInfo)
	l.Module("verify").Info("decision", "accepted", true)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["module"] != "verify" {
		t.Errorf("module = %v, want verify", entry["module"])
	}
	if entry["msg"] != "decision" {
		t.Errorf("msg = %v, want decision", entry["msg"])
	}
	if entry["accepted"] != true {
		t.Errorf("accepted = %v, want true", entry["accepted"])
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := captureLogger(slog.LevelWarn)
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info record emitted below threshold: %q", buf.String())
	}
	l.Warn("shown")
	if buf.Len() == 0 {
		t.Error("warn record suppressed at warn threshold")
	}
}

func TestVerbosityLevel(t *testing.T) {
	cases := []struct {
		verbosity int
		want      slog.Level
	}{
		{0, slog.LevelError},
		{1, slog.LevelError},
		{2, slog.LevelWarn},
		{3, slog.LevelInfo},
		{4, slog.LevelDebug},
		{9, slog.LevelDebug},
	}
	for _, c := range cases {
		if got := VerbosityLevel(c.verbosity); got != c.want {
			t.Errorf("VerbosityLevel(%d) = %v, want %v", c.verbosity, got, c.want)
		}
	}
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	l, buf := captureLogger(slog.LevelInfo)
	SetDefault(l)
	Info("through default")

	if buf.Len() == 0 {
		t.Error("package-level Info did not reach the replaced default logger")
	}

	SetDefault(nil)
	if Default() != l {
		t.Error("SetDefault(nil) replaced the default logger")
	}
}
