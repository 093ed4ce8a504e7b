package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"twodo/internal/store"
)

func TestMissingArgumentShowsUsage(t *testing.T) {
	cmd := NewRootCmd()
	var stderr bytes.Buffer
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected an error with no task file")
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Fatalf("expected usage on stderr, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "twodo <task-file>") {
		t.Fatalf("usage missing command line, got %q", stderr.String())
	}
}

func TestTooManyArgumentsFails(t *testing.T) {
	cmd := NewRootCmd()
	var stderr bytes.Buffer
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"a", "b"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error with two task files")
	}
}

func TestMalformedFileFailsBeforeUI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks")
	if err := os.WriteFile(path, []byte("TODO: a\nNOTE: buy milk\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cmd := NewRootCmd()
	var stderr bytes.Buffer
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected a format error")
	}
	if !store.IsParseError(err) {
		t.Fatalf("expected a parse error, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), path+":2") {
		t.Fatalf("diagnostic must carry path and 1-based line, got %q", err.Error())
	}
}

func TestMissingFileFails(t *testing.T) {
	cmd := NewRootCmd()
	var stderr bytes.Buffer
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope")})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for a missing task file")
	}
}
