// Command latticec embeds the class-hierarchy resolution core behind a
// small CLI: load a declaration-graph fixture, run the driver over it,
// and report either the resolved graph or the diagnostics produced
// along the way.
package main

import (
	"fmt"
	"os"

	"github.com/lattice-lang/latticec/cmd/latticec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
