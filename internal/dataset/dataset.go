// Package dataset locates and reads the card universe file. The universe is a
// single JSON document (array or object) produced by the tools under cmd/; it
// is returned to the frontend as opaque text and parsed there.
package dataset

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Canonical universe filenames. Keep these in sync with the frontend's
// config/dataset.ts, which encodes the same locations.
const (
	PreferredFilename = "legal.json"
	FallbackFilename  = "all.json"
)

// EnvOverride points directly at a universe file and is probed before the
// built-in candidates when set.
const EnvOverride = "MTGSLOP_UNIVERSE"

// searchDirs are the directory prefixes probed for each filename, in priority
// order relative to the working directory.
var searchDirs = []string{".", "..", "../..", "../notes", "../../notes"}

// Options configure a Locator. Start from DefaultOptions and override what a
// caller (usually a test) needs.
type Options struct {
	Preferred string
	Fallback  string
	Dirs      []string
	// BaseDir is prepended to every candidate; empty means the process
	// working directory.
	BaseDir string
	// DisableEnv skips the EnvOverride probe.
	DisableEnv bool
}

// DefaultOptions returns the canonical candidate configuration.
func DefaultOptions() Options {
	dirs := make([]string, len(searchDirs))
	copy(dirs, searchDirs)
	return Options{Preferred: PreferredFilename, Fallback: FallbackFilename, Dirs: dirs}
}

// Locator probes an ordered list of candidate paths for the universe file.
// It holds no open handles and no cached contents; every Load is a fresh scan.
type Locator struct {
	opt Options
}

func New(opt Options) *Locator {
	return &Locator{opt: opt}
}

// Candidates returns the ordered candidate paths. Every preferred-name
// candidate precedes every fallback-name candidate, so an older all.json two
// directories up never shadows a legal.json next to the binary.
func (l *Locator) Candidates() []string {
	out := make([]string, 0, 2*len(l.opt.Dirs))
	for _, name := range []string{l.opt.Preferred, l.opt.Fallback} {
		if name == "" {
			continue
		}
		for _, dir := range l.opt.Dirs {
			out = append(out, filepath.Join(l.opt.BaseDir, dir, name))
		}
	}
	return out
}

// Load probes the candidates in order and returns the contents of the first
// existing, non-empty one together with the path it came from.
//
// An existing candidate that cannot be opened or read fails the whole scan;
// later candidates are not tried. A candidate that is empty after trimming
// leading whitespace is skipped and scanning continues.
func (l *Locator) Load() (string, string, error) {
	paths := l.Candidates()
	if !l.opt.DisableEnv {
		if p := os.Getenv(EnvOverride); p != "" {
			paths = append([]string{p}, paths...)
		}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		text, err := ReadFile(p)
		if err != nil {
			var empty *EmptyError
			if errors.As(err, &empty) {
				continue
			}
			return "", "", err
		}
		return text, p, nil
	}
	return "", "", &NotFoundError{Preferred: l.opt.Preferred, Fallback: l.opt.Fallback}
}

// ReadFile reads one universe file in full, distinguishing open failures from
// read failures and rejecting whitespace-only contents.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &OpenError{Path: path, Err: err}
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	text := string(b)
	// Basic sanity: real universe files start with '[' or '{'.
	if strings.TrimLeftFunc(text, unicode.IsSpace) == "" {
		return "", &EmptyError{Path: path}
	}
	return text, nil
}
