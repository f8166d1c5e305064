package cli

import (
	"fmt"

	"github.com/keytree/hdkeygen"
	"github.com/spf13/cobra"
)

var generateWords int

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new BIP39 mnemonic phrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		phrase, err := hdkeygen.GenerateMnemonic(generateWords)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		fmt.Println(phrase)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateWords, "words", "w", 12, "mnemonic word count (12, 15, 18, 21, 24)")
	rootCmd.AddCommand(generateCmd)
}
