// Package cli implements the hdkeygen command-line front-end: generate,
// validate, seed, derive, bip44, and help. It is a thin collaborator over
// the hdkeygen package, wiring user input to the library entry points.
package cli

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "hdkeygen",
	Short:   "BIP39/BIP32 hierarchical deterministic key manager",
	Version: version,
}

// Execute runs the CLI, returning the first error encountered. main exits 1
// on a non-nil error, 0 otherwise.
func Execute() error {
	return rootCmd.Execute()
}
