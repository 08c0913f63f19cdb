package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// encode <date> <ii> <mi> <message>: frame a message under the day key.
func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <date> <indicator-indicator> <message-indicator> <message>",
		Short: "Encode a message under a day's setting",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			frame, err := wire.Cipher.EncodeForDate(date, args[1], args[2], args[3])
			if err != nil {
				return err
			}
			fmt.Println(frame)
			return nil
		},
	}
}
