// Compute which cards from a wanted list are not yet owned and write them
// sorted, one name per line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bradleybauer/mtgslop/internal/cards"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("requiredcards", flag.ContinueOnError)
	cardsPath := fs.String("cards", "cards.txt", "Wanted card names, one per line")
	ownedPath := fs.String("owned", "ownedCards.txt", "Owned card names, one per line")
	out := fs.String("out", "requiredCards.txt", "Output file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage(fs)
		return 2
	}

	all, err := readNameFile(*cardsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read cards file:", err)
		return 1
	}
	owned, err := readNameFile(*ownedPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read owned file:", err)
		return 1
	}

	required := cards.Required(all, owned)
	w, err := os.Create(os.ExpandEnv(*out))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create output file:", err)
		return 1
	}
	for _, n := range required {
		if _, err := fmt.Fprintln(w, n); err != nil {
			fmt.Fprintln(os.Stderr, "failed to write output:", err)
			w.Close()
			return 1
		}
	}
	if err := w.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write output:", err)
		return 1
	}
	fmt.Printf("Wrote %d required cards to %s\n", len(required), *out)
	return 0
}

func readNameFile(path string) ([]string, error) {
	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cards.ReadNames(f)
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: %s [--cards cards.txt] [--owned ownedCards.txt] [--out requiredCards.txt]\n", fs.Name())
}
