package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"enigma/internal/codebook"
)

// seal <in> [out]: encrypt a plaintext codebook under the passphrase.
func sealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seal <codebook> [sealed]",
		Short: "Seal a plaintext codebook with the passphrase",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			in := args[0]
			out := in + codebook.SealedExtension
			if len(args) == 2 {
				out = args[1]
			}

			raw, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			sealed, err := codebook.Seal(passphrase, raw)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, sealed, 0o600); err != nil {
				return err
			}
			fmt.Println("sealed to", out)
			return nil
		},
	}
}
