// Command planctl runs a scenario file through the tactical planner headlessly:
// load a map, seed two or more teams, and step the turn system either one
// team at a time or to completion, printing each AI turn's events (for run,
// only with --verbose) and the final outcome.
package main

import (
	"fmt"
	"os"

	"github.com/turnforge/tacticalplanner/cmd/planctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
