package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func rotorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotors",
		Short: "List the known rotors and reflectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rotors, err := wire.Catalog.List()
			if err != nil {
				return err
			}
			for _, r := range rotors {
				notches := "-"
				if len(r.Notches) > 0 {
					notches = strings.Join(r.Notches, ",")
				}
				fmt.Printf("%-8s %s  notches %s\n", r.Name, r.Wiring, notches)
			}
			return nil
		},
	}
}
