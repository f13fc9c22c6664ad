package app

import (
	"context"
	"sync"

	"github.com/bradleybauer/mtgslop/internal/dataset"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App exposes the backend commands to the Wails frontend.
type App struct {
	mu  sync.Mutex
	ctx context.Context

	loc *dataset.Locator

	// diagnostics for the most recent successful load
	universeSource string
	universeBytes  int
}

func New() *App {
	return NewWith(dataset.DefaultOptions())
}

// NewWith builds an App with explicit locator options. Tests use it to point
// the candidate scan at a temp directory.
func NewWith(opt dataset.Options) *App {
	return &App{loc: dataset.New(opt), universeSource: "none"}
}

// Startup is called by Wails when the app starts. It resolves the universe
// once so the log shows where it lives; LoadUniverse still probes fresh on
// every call.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	text, src, err := a.loc.Load()
	if err != nil {
		if a.isWailsContext() {
			runtime.LogWarningf(a.ctx, "universe not resolved at startup: %v", err)
		}
		return
	}
	a.recordSource(src, len(text))
	if a.isWailsContext() {
		runtime.LogInfof(a.ctx, "universe found at %s (%d bytes)", src, len(text))
	}
}

// Shutdown is called by Wails when the app terminates. There is no background
// work to stop; loads are synchronous and per-call.
func (a *App) Shutdown(ctx context.Context) {}

// Ping reports that the backend is alive.
func (a *App) Ping() string {
	return "pong"
}

// LoadUniverse locates the universe file among the candidate paths and
// returns its raw text. The contents are not parsed here; the frontend owns
// the JSON. Each call is an independent scan, nothing is cached.
func (a *App) LoadUniverse() (string, error) {
	text, src, err := a.loc.Load()
	if err != nil {
		if a.isWailsContext() {
			runtime.LogWarningf(a.ctx, "load universe: %v", err)
		}
		return "", err
	}
	a.recordSource(src, len(text))
	return text, nil
}

// LoadUniverseFrom reads a caller-chosen universe file, applying the same
// open/read/empty rules as the candidate scan. Pairs with SelectUniverseFile.
func (a *App) LoadUniverseFrom(path string) (string, error) {
	text, err := dataset.ReadFile(path)
	if err != nil {
		return "", err
	}
	a.recordSource(path, len(text))
	return text, nil
}

// SelectUniverseFile opens a native file dialog and returns the chosen path.
func (a *App) SelectUniverseFile() (string, error) {
	return runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Select universe file",
		Filters: []runtime.FileFilter{
			{
				DisplayName: "JSON Files (*.json)",
				Pattern:     "*.json",
			},
		},
	})
}

// UniverseSource returns where the most recent successful load came from and
// its size in bytes. "none" until a load succeeds.
func (a *App) UniverseSource() (string, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.universeSource, a.universeBytes
}

func (a *App) recordSource(src string, size int) {
	a.mu.Lock()
	a.universeSource = src
	a.universeBytes = size
	a.mu.Unlock()
}

// isWailsContext checks if the context is valid for Wails runtime calls.
// In tests, a.ctx is context.Background(), which is not.
func (a *App) isWailsContext() bool {
	return a.ctx != nil && a.ctx != context.Background() && a.ctx != context.TODO()
}
