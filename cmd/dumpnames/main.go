// Dump card names from a Scryfall JSONL dump, one per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bradleybauer/mtgslop/internal/cards"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("dumpnames", flag.ContinueOnError)
	input := fs.String("input", "", "Input JSONL file (one card object per line)")
	out := fs.String("out", "-", "Output file (default stdout)")
	unique := fs.Bool("unique", false, "Emit each distinct name once")
	sortNames := fs.Bool("sort", false, "Sort names alphabetically before output")
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
		return 1
	}
	names, skipped, err := cards.NamesFromJSONL(f)
	f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read input file:", err)
		return 1
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d malformed lines\n", skipped)
	}

	if *unique {
		names = cards.Unique(names)
	}
	if *sortNames {
		cards.SortNames(names)
	}

	var w io.WriteCloser = os.Stdout
	toFile := *out != "-"
	if toFile {
		w, err = os.Create(os.ExpandEnv(*out))
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to create output file:", err)
			return 1
		}
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			fmt.Fprintln(os.Stderr, "failed to write output:", err)
			if toFile {
				w.Close()
			}
			return 1
		}
	}
	if toFile {
		if err := w.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "failed to write output:", err)
			return 1
		}
	}
	fmt.Fprintf(os.Stderr, "Wrote %d names to %s\n", len(names), *out)
	return 0
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: %s --input cards.jsonl [--out names.txt] [--unique] [--sort]\n", fs.Name())
}
