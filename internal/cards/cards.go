// Package cards holds the name-list plumbing shared by the dataset tools:
// reading newline-separated card name files, pulling names back out of JSONL
// dumps, and computing which cards are still missing from a collection.
package cards

import (
	"bufio"
	"encoding/json"
	"io"
	"sort"
	"strings"
)

// ReadNames reads a newline-separated name list. Blank lines and lines
// starting with '#' or '//' are skipped; duplicates are dropped, keeping the
// first occurrence's position.
func ReadNames(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	seen := make(map[string]bool)
	var names []string
	for s.Scan() {
		raw := strings.TrimSpace(s.Text())
		if raw == "" || strings.HasPrefix(raw, "#") || strings.HasPrefix(raw, "//") {
			continue
		}
		if !seen[raw] {
			seen[raw] = true
			names = append(names, raw)
		}
	}
	return names, s.Err()
}

// NamesFromJSONL extracts the "name" field from each object in a JSON Lines
// stream. Lines that fail to parse or lack a string name are skipped and
// counted rather than failing the whole read.
func NamesFromJSONL(r io.Reader) (names []string, skipped int, err error) {
	s := bufio.NewScanner(r)
	// card objects can be long lines
	s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if e := json.Unmarshal([]byte(line), &obj); e != nil || obj.Name == "" {
			skipped++
			continue
		}
		names = append(names, obj.Name)
	}
	return names, skipped, s.Err()
}

// Unique drops duplicate names, keeping first-seen order.
func Unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// SortNames sorts in place, case-insensitively.
func SortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
}

// Required returns the names in all that are not in owned, sorted.
func Required(all, owned []string) []string {
	have := make(map[string]bool, len(owned))
	for _, n := range owned {
		have[n] = true
	}
	out := make([]string, 0, len(all))
	for _, n := range Unique(all) {
		if !have[n] {
			out = append(out, n)
		}
	}
	SortNames(out)
	return out
}
