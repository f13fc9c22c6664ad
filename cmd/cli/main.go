// Headless universe probe for development: reports which candidate file the
// app would load without starting the Wails shell.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bradleybauer/mtgslop/internal/dataset"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the testable entrypoint for the CLI. It returns an exit code rather
// than exiting directly.
func run(args []string) int {
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	dir := fs.String("dir", "", "Base directory to probe from (default: working directory)")
	file := fs.String("file", "", "Load this exact file instead of probing candidates")
	dump := fs.Bool("print", false, "Dump the universe contents to stdout")
	list := fs.Bool("list", false, "List the candidate paths in probe order and exit")
	if err := fs.Parse(args); err != nil {
		fmt.Println("Usage: cli [--dir path] [--file path] [--print] [--list]")
		return 2
	}

	opt := dataset.DefaultOptions()
	if *dir != "" {
		opt.BaseDir = os.ExpandEnv(*dir)
	}
	loc := dataset.New(opt)

	if *list {
		for _, p := range loc.Candidates() {
			fmt.Println(p)
		}
		return 0
	}

	var text, src string
	var err error
	if *file != "" {
		src = os.ExpandEnv(*file)
		text, err = dataset.ReadFile(src)
	} else {
		text, src, err = loc.Load()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	fmt.Printf("Universe: %s (%d bytes)\n", src, len(text))
	if *dump {
		fmt.Print(text)
	}
	return 0
}
