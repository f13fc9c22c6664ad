package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bradleybauer/mtgslop/internal/dataset"
)

func testApp(t *testing.T, dirs ...string) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	a := NewWith(dataset.Options{
		Preferred:  dataset.PreferredFilename,
		Fallback:   dataset.FallbackFilename,
		Dirs:       dirs,
		BaseDir:    dir,
		DisableEnv: true,
	})
	return a, dir
}

func TestPingAlwaysPong(t *testing.T) {
	a := New()
	for i := 0; i < 5; i++ {
		if got := a.Ping(); got != "pong" {
			t.Fatalf("Ping() call %d = %q; want %q", i, got, "pong")
		}
	}
}

func TestLoadUniverse(t *testing.T) {
	a, dir := testApp(t)
	content := `{"cards":[{"name":"Sol Ring"}]}`
	if err := os.WriteFile(filepath.Join(dir, "legal.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	a.Startup(context.Background())

	got, err := a.LoadUniverse()
	if err != nil {
		t.Fatalf("LoadUniverse: %v", err)
	}
	if got != content {
		t.Fatalf("LoadUniverse = %q; want %q", got, content)
	}
	src, size := a.UniverseSource()
	if src != filepath.Join(dir, "legal.json") {
		t.Fatalf("source = %q", src)
	}
	if size != len(content) {
		t.Fatalf("size = %d; want %d", size, len(content))
	}
}

func TestLoadUniverseNotFound(t *testing.T) {
	a, _ := testApp(t)
	a.Startup(context.Background())

	_, err := a.LoadUniverse()
	if err == nil {
		t.Fatal("expected error with no candidate files")
	}
	var nf *dataset.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
	src, size := a.UniverseSource()
	if src != "none" || size != 0 {
		t.Fatalf("expected no recorded source, got %q/%d", src, size)
	}
}

func TestLoadUniverseFrom(t *testing.T) {
	a, dir := testApp(t)
	p := filepath.Join(dir, "elsewhere.json")
	if err := os.WriteFile(p, []byte(`[1]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := a.LoadUniverseFrom(p)
	if err != nil {
		t.Fatalf("LoadUniverseFrom: %v", err)
	}
	if got != `[1]` {
		t.Fatalf("got %q", got)
	}
	if src, _ := a.UniverseSource(); src != p {
		t.Fatalf("source = %q; want %q", src, p)
	}

	if _, err := a.LoadUniverseFrom(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing explicit file")
	}
}

func TestStartupShutdownIdempotent(t *testing.T) {
	a, _ := testApp(t)
	ctx := context.Background()
	// Multiple calls should not panic
	a.Startup(ctx)
	a.Startup(ctx)
	a.Shutdown(ctx)
	a.Shutdown(ctx)
}
