package cli

import (
	"fmt"

	"github.com/keytree/hdkeygen"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <phrase>",
	Short: "Validate a BIP39 mnemonic phrase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := hdkeygen.ValidateMnemonic(args[0]); err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		fmt.Println("valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
