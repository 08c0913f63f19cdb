package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"enigma/internal/crypto"
)

// fingerprint <date>: print a short digest of the day's keyed setting so two
// operators can confirm their machines match without reading settings aloud.
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <date>",
		Short: "Print the fingerprint of a day's setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			setting, err := wire.Settings.ForDate(date)
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(setting))
			return nil
		},
	}
}
