package logging

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogLineFormat(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		level:   LevelDebug,
		writers: []io.Writer{&buf},
	}

	l.Info("renamer", "renamed file", F("from", "a.mkv"), F("to", "b.mkv"))

	line := buf.String()
	for _, want := range []string{"[INFO]", "[renamer]", "renamed file", "from=a.mkv", "to=b.mkv"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestLogIncludesError(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		level:   LevelDebug,
		writers: []io.Writer{&buf},
	}

	l.Error("watcher", "event failed", errors.New("boom"))

	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("log line %q missing error field", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		level:   LevelWarn,
		writers: []io.Writer{&buf},
	}

	l.Debug("test", "hidden")
	l.Info("test", "hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got %q", buf.String())
	}

	l.Warn("test", "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("warn line missing, got %q", buf.String())
	}
}

func TestNopLoggerIsSilent(t *testing.T) {
	l := Nop()
	// Must not panic and must not write anywhere
	l.Debug("x", "msg")
	l.Info("x", "msg")
	l.Warn("x", "msg")
	l.Error("x", "msg", errors.New("err"))
}

func TestRotateFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "app.log")

	write := func(path, content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	write(base, "current")
	write(filepath.Join(dir, "app.1.log"), "one")
	write(filepath.Join(dir, "app.2.log"), "two")

	if err := rotateFiles(base, 3); err != nil {
		t.Fatalf("rotateFiles() error = %v", err)
	}

	assertContent := func(path, want string) {
		t.Helper()
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("missing %s: %v", path, err)
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", path, data, want)
		}
	}

	assertContent(filepath.Join(dir, "app.1.log"), "current")
	assertContent(filepath.Join(dir, "app.2.log"), "one")
	assertContent(filepath.Join(dir, "app.3.log"), "two")

	if _, err := os.Stat(base); !os.IsNotExist(err) {
		t.Errorf("live log should have been rotated away")
	}
}

func TestRotateFilesDropsOldBackups(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "app.log")

	if err := os.WriteFile(filepath.Join(dir, "app.2.log"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := rotateFiles(base, 2); err != nil {
		t.Fatalf("rotateFiles() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "app.2.log")); !os.IsNotExist(err) {
		t.Errorf("backup at the retention limit should be removed")
	}
}
