package executor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	out, err := New().Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("output = %q, want hello", out)
	}
}

func TestExecuteMissingBinary(t *testing.T) {
	_, err := New().Execute(context.Background(), "definitely-not-a-binary-xyz")
	if err == nil {
		t.Error("Execute() should fail for a missing binary")
	}
}

func TestExecuteFailureIncludesStderr(t *testing.T) {
	_, err := New().Execute(context.Background(), "sh", "-c", "echo boom >&2; exit 1")
	if err == nil {
		t.Fatal("Execute() expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should include stderr output", err.Error())
	}
}

func TestExecuteInDir(t *testing.T) {
	dir := t.TempDir()
	if _, err := New().ExecuteInDir(context.Background(), dir, "touch", "marker"); err != nil {
		t.Fatalf("ExecuteInDir() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
		t.Errorf("command did not run in %s: %v", dir, err)
	}
}
