package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunComputesDifference(t *testing.T) {
	dir := t.TempDir()
	cardsPath := filepath.Join(dir, "cards.txt")
	ownedPath := filepath.Join(dir, "owned.txt")
	out := filepath.Join(dir, "required.txt")

	if err := os.WriteFile(cardsPath, []byte("// wishlist\nSol Ring\nBrainstorm\nCounterspell\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(ownedPath, []byte("Brainstorm\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	code := run([]string{"--cards", cardsPath, "--owned", ownedPath, "--out", out})
	if code != 0 {
		t.Fatalf("exit code=%d want 0", code)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read out: %v", err)
	}
	if got, want := string(b), "Counterspell\nSol Ring\n"; got != want {
		t.Fatalf("output=%q want %q", got, want)
	}
}

func TestRunMissingInputs(t *testing.T) {
	dir := t.TempDir()
	if code := run([]string{"--cards", filepath.Join(dir, "nope.txt")}); code != 1 {
		t.Fatalf("missing cards file: exit code=%d want 1", code)
	}
	cardsPath := filepath.Join(dir, "cards.txt")
	if err := os.WriteFile(cardsPath, []byte("A\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if code := run([]string{"--cards", cardsPath, "--owned", filepath.Join(dir, "nope.txt")}); code != 1 {
		t.Fatalf("missing owned file: exit code=%d want 1", code)
	}
}
