// Fetch Scryfall card objects for a newline-separated list of card names and
// write them as JSON Lines. Uses /cards/collection in batches; names that
// cannot be resolved are reported on stderr without failing the run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bradleybauer/mtgslop/internal/cards"
	"github.com/bradleybauer/mtgslop/internal/scryfall"
)

// EnvEndpoint overrides the Scryfall API root, mostly for tests and mirrors.
const EnvEndpoint = "MTGSLOP_SCRYFALL_ENDPOINT"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("fetchcards", flag.ContinueOnError)
	input := fs.String("input", "", "Input file: one card name per line ('#' and '//' comments ignored)")
	out := fs.String("out", "cards.jsonl", "Output JSONL file (one card object per line)")
	endpoint := fs.String("endpoint", "", "Scryfall API root (defaults to production)")
	timeout := fs.Duration("timeout", 2*time.Minute, "Overall timeout for all batches")
	verbose := fs.Bool("verbose", false, "Report per-batch progress on stderr")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage(fs)
		return 2
	}
	if *input == "" {
		fmt.Fprintln(os.Stderr, "--input is required")
		usage(fs)
		return 2
	}

	f, err := os.Open(os.ExpandEnv(*input))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read input file:", err)
		return 2
	}
	names, err := cards.ReadNames(f)
	f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read input file:", err)
		return 2
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "no card names in", *input)
		return 2
	}

	client := scryfall.New()
	if *endpoint != "" {
		client.BaseURL = *endpoint
	} else if e := os.Getenv(EnvEndpoint); e != "" {
		client.BaseURL = e
	}
	if *verbose {
		client.Progressf = func(format string, v ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", v...)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	found, notFound, err := client.Collection(ctx, names)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to fetch cards:", err)
		return 3
	}

	w, err := os.Create(os.ExpandEnv(*out))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create output file:", err)
		return 2
	}
	var written int
	for _, raw := range orderedResults(names, found) {
		if _, err := w.Write(append(raw, '\n')); err != nil {
			fmt.Fprintln(os.Stderr, "failed to write output:", err)
			w.Close()
			return 2
		}
		written++
	}
	if err := w.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write output:", err)
		return 2
	}

	fmt.Printf("Wrote %d cards to %s\n", written, *out)
	if len(notFound) > 0 {
		fmt.Fprintf(os.Stderr, "%d names not found:\n", len(notFound))
		for _, n := range notFound {
			fmt.Fprintln(os.Stderr, "  -", n)
		}
	}
	return 0
}

// orderedResults yields the fetched objects following the input order where
// possible; cards whose resolved name differs from the requested one (split
// cards resolved by front face) are appended afterwards.
func orderedResults(names []string, found map[string]json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(found))
	emitted := make(map[string]bool, len(found))
	for _, n := range names {
		if raw, ok := found[n]; ok && !emitted[n] {
			out = append(out, raw)
			emitted[n] = true
		}
	}
	rest := make([]string, 0, len(found))
	for n := range found {
		if !emitted[n] {
			rest = append(rest, n)
		}
	}
	cards.SortNames(rest)
	for _, n := range rest {
		out = append(out, found[n])
	}
	return out
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: %s --input cards.txt [--out cards.jsonl] [--endpoint URL] [--timeout 2m] [--verbose]\n", fs.Name())
}
