package main

import (
	"fmt"
	"io"
	"os"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

// run returns the process exit code; all output including diagnostics goes to stdout
func run(args []string, stdout io.Writer) int {
	cfg, err := parser.ParseConfig(args)
	if err != nil {
		fmt.Fprintf(stdout, "Problem parsing arguments: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Lines containing query `%s` in file `%s` (case %s):\n", cfg.Query, cfg.FileName, cfg.CaseMode())

	contents, err := reader.ReadContent(cfg.FileName)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	for _, line := range matcher.Search(cfg.Query, contents, cfg.CaseSensitive) {
		fmt.Fprintf(stdout, "- %s\n", line)
	}

	return 0
}
