package cli

import (
	"fmt"

	"github.com/keytree/hdkeygen"
	"github.com/spf13/cobra"
)

var deriveCmd = &cobra.Command{
	Use:   "derive <phrase> <path> [passphrase]",
	Short: "Derive an extended private key (xprv) at a BIP32 path",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		passphrase := ""
		if len(args) == 3 {
			passphrase = args[2]
		}

		seed := hdkeygen.MnemonicToSeed(args[0], passphrase)
		master, err := hdkeygen.MasterKeyFromSeed(seed[:])
		if err != nil {
			return fmt.Errorf("derive: %w", err)
		}

		child, err := hdkeygen.DerivePath(master, args[1])
		if err != nil {
			return fmt.Errorf("derive: %w", err)
		}

		fmt.Println(hdkeygen.ToXPRVString(child))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deriveCmd)
}
