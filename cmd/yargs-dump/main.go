// Command yargs-dump parses an argument list with the yargs parser and prints
// the resulting argv. Declarations are given as flags before "--".
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("error:"), err)
		os.Exit(1)
	}
}
