// Command hdkeygen is the thin CLI front-end over the hdkeygen core: it
// wires user input to the library entry points and renders diagnostics. The
// hard engineering lives in the bip39 and bip32 packages.
package main

import (
	"os"

	"github.com/keytree/hdkeygen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
