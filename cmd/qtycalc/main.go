// Command qtycalc evaluates unit-aware expressions and cleans the stored
// defaults of parameter sheets.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := NewCmdRoot(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
