// Dump Scryfall /cards/search results as JSON Lines, one raw card object per
// line. The query uses Scryfall's search syntax, e.g.
// "oracletag:typal id:simic -t:emblem legal:commander".
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bradleybauer/mtgslop/internal/scryfall"
)

// EnvEndpoint overrides the Scryfall API root, mostly for tests and mirrors.
const EnvEndpoint = "MTGSLOP_SCRYFALL_ENDPOINT"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("searchcards", flag.ContinueOnError)
	query := fs.String("q", "", "Scryfall search query")
	queryFile := fs.String("query-file", "", "Read the search query from this file instead of -q")
	out := fs.String("out", "cards.jsonl", "Output JSONL file (one card object per line)")
	unique := fs.String("unique", "cards", "Scryfall unique mode: cards, art, or prints")
	endpoint := fs.String("endpoint", "", "Scryfall API root (defaults to production)")
	timeout := fs.Duration("timeout", 5*time.Minute, "Overall timeout for all pages")
	verbose := fs.Bool("verbose", false, "Report per-page progress on stderr")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage(fs)
		return 2
	}

	q := strings.TrimSpace(*query)
	switch {
	case q != "" && *queryFile != "":
		fmt.Fprintln(os.Stderr, "-q and --query-file are mutually exclusive")
		usage(fs)
		return 2
	case q == "" && *queryFile == "":
		fmt.Fprintln(os.Stderr, "-q or --query-file is required")
		usage(fs)
		return 2
	case *queryFile != "":
		b, err := os.ReadFile(os.ExpandEnv(*queryFile))
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to read query file:", err)
			return 2
		}
		// a query file may wrap a long query over several lines
		q = strings.Join(strings.Fields(string(b)), " ")
		if q == "" {
			fmt.Fprintln(os.Stderr, "query file is empty:", *queryFile)
			return 2
		}
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
	results, err := client.Search(ctx, q, *unique)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to search cards:", err)
		return 3
	}

	w, err := os.Create(os.ExpandEnv(*out))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create output file:", err)
		return 2
	}
	for _, raw := range results {
		if _, err := w.Write(append(raw, '\n')); err != nil {
			fmt.Fprintln(os.Stderr, "failed to write output:", err)
			w.Close()
			return 2
		}
	}
	if err := w.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write output:", err)
		return 2
	}
	fmt.Printf("Wrote %d cards to %s\n", len(results), *out)
	return 0
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: %s -q QUERY | --query-file FILE [--out cards.jsonl] [--unique cards] [--endpoint URL] [--timeout 5m] [--verbose]\n", fs.Name())
}
