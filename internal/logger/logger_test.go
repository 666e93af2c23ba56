package logger

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestVerboseOnlyLevels(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	SetVerbose(false)
	Debug("hidden %d", 1)
	Info("hidden")
	Section("Hidden")
	if buf.Len() > 0 {
		t.Errorf("expected no output when not verbose, got %q", buf.String())
	}

	SetVerbose(true)
	Debug("ranked %d documents", 3)
	Info("corpus ready")
	Section("Ranking")

	want := "[DEBUG] ranked 3 documents\n[INFO] corpus ready\n\n=== Ranking ===\n"
	if buf.String() != want {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestWarnAndErrorAlwaysPrint(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Warn("source %s unavailable", "github")
	Error("boom")

	want := "[WARN] source github unavailable\n[ERROR] boom\n"
	if buf.String() != want {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestOutput(t *testing.T) {
	defer reset()

	SetOutput(io.Discard)
	if Output() != io.Discard {
		t.Error("expected Output to return the configured writer")
	}
}
