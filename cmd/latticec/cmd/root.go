package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "latticec",
	Short: "Class-hierarchy resolution core for the Lattice language",
	Long: `latticec embeds the class-hierarchy resolution core: given a
declaration-graph fixture (or, once a real front end is attached, a
parsed source tree), it resolves every class's supertype, interfaces,
mixin-application chain, type-parameter bounds, synthesized
constructors, and linearized supertype set.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
