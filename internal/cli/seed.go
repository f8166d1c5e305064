package cli

import (
	"fmt"

	"github.com/keytree/hdkeygen"
	"github.com/keytree/hdkeygen/hexutil"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <phrase> [passphrase]",
	Short: "Derive the 64-byte BIP39 seed from a mnemonic phrase",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		passphrase := ""
		if len(args) == 2 {
			passphrase = args[1]
		}
		seed := hdkeygen.MnemonicToSeed(args[0], passphrase)
		fmt.Println(hexutil.BytesToHex(seed[:]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
