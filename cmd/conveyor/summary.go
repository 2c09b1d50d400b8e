package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"conveyor/internal/processor"
)

// printSummary writes a human-readable batch summary to w. The same three
// lists feed the notification; this is the operator-facing view.
func printSummary(w io.Writer, result processor.BatchResult) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	fmt.Fprintf(w, "Batch finished: %d imported, %d failed, %d git errors\n",
		len(result.Imported), len(result.Failed), len(result.GitErrors))

	for _, item := range result.Imported {
		green.Fprintf(w, "  imported %s version %s (%s)\n", item.Name, item.Version, item.BranchName)
	}
	for _, failure := range result.Failed {
		yellow.Fprintf(w, "  failed %s: %s\n", failure.Recipe, failure.Message)
	}
	for _, gitErr := range result.GitErrors {
		red.Fprintf(w, "  push failed %s: %s\n", gitErr.Branch, gitErr.Error)
	}
}
