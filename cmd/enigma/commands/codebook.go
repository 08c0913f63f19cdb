package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// codebook <date>: show the day's setting from the codebook.
func codebookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codebook <date>",
		Short: "Show the codebook entry for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			ds, err := wire.Codebook.Setting(date)
			if err != nil {
				return err
			}
			fmt.Printf("date      %s\n", ds.Date)
			fmt.Printf("rotors    %s\n", strings.Join(ds.Rotors, " "))
			fmt.Printf("indicator %s\n", ds.Indicator)
			if len(ds.Plugs) > 0 {
				fmt.Printf("plugs     %s\n", strings.Join(ds.Plugs, " "))
			}
			fmt.Printf("reflector %s\n", ds.Reflector)
			return nil
		},
	}
}
