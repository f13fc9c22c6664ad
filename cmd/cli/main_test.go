package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunProbesBaseDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "legal.json"), []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if code := run([]string{"--dir", dir}); code != 0 {
		t.Fatalf("exit code=%d want 0", code)
	}
}

func TestRunNotFound(t *testing.T) {
	if code := run([]string{"--dir", t.TempDir()}); code != 1 {
		t.Fatalf("exit code=%d want 1", code)
	}
}

func TestRunExplicitFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "u.json")
	if err := os.WriteFile(p, []byte(`[1]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if code := run([]string{"--file", p, "--print"}); code != 0 {
		t.Fatalf("exit code=%d want 0", code)
	}
	if code := run([]string{"--file", filepath.Join(dir, "missing.json")}); code != 1 {
		t.Fatalf("exit code=%d want 1 for missing file", code)
	}
}

func TestRunList(t *testing.T) {
	if code := run([]string{"--dir", t.TempDir(), "--list"}); code != 0 {
		t.Fatalf("exit code=%d want 0", code)
	}
}

func TestRunBadFlag(t *testing.T) {
	if code := run([]string{"--definitely-not-a-flag"}); code != 2 {
		t.Fatalf("exit code=%d want 2", code)
	}
}
