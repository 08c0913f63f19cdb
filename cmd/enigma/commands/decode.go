package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// decode <date> <frame>: recover the plaintext of a received frame.
func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <date> <frame>",
		Short: "Decode a received frame under a day's setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			plaintext, err := wire.Cipher.DecodeForDate(date, args[1])
			if err != nil {
				return err
			}
			fmt.Println(plaintext)
			return nil
		},
	}
}
