package cli

import (
	"fmt"

	"github.com/keytree/hdkeygen"
	"github.com/spf13/cobra"
)

var (
	bip44Coin    uint32
	bip44Account uint32
	bip44Chain   uint32
	bip44Address uint32
)

var bip44Cmd = &cobra.Command{
	Use:   "bip44 <phrase> [passphrase]",
	Short: "Derive an xprv at a BIP44 account path (m/44'/coin'/account'/chain/address)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		passphrase := ""
		if len(args) == 2 {
			passphrase = args[1]
		}

		seed := hdkeygen.MnemonicToSeed(args[0], passphrase)
		master, err := hdkeygen.MasterKeyFromSeed(seed[:])
		if err != nil {
			return fmt.Errorf("bip44: %w", err)
		}

		child, err := hdkeygen.DeriveBIP44Path(master, bip44Coin, bip44Account, bip44Chain, bip44Address)
		if err != nil {
			return fmt.Errorf("bip44: %w", err)
		}

		fmt.Println(hdkeygen.ToXPRVString(child))
		return nil
	},
}

func init() {
	bip44Cmd.Flags().Uint32Var(&bip44Coin, "coin", 0, "SLIP-0044 coin type")
	bip44Cmd.Flags().Uint32Var(&bip44Account, "account", 0, "account index")
	bip44Cmd.Flags().Uint32Var(&bip44Chain, "chain", 0, "0 = external/receiving, 1 = internal/change")
	bip44Cmd.Flags().Uint32Var(&bip44Address, "address", 0, "address index")
	rootCmd.AddCommand(bip44Cmd)
}
