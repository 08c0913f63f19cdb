package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"enigma/internal/app"
	"enigma/internal/domain"
)

var (
	cfgFile      string
	catalogFile  string
	codebookFile string
	passphrase   string
	apiURL       string
	debug        bool

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "enigma",
		Short: "Rotor cipher machine CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(cfgFile)
			if err != nil {
				return err
			}
			if catalogFile != "" {
				cfg.CatalogFile = catalogFile
			}
			if codebookFile != "" {
				cfg.CodebookFile = codebookFile
			}
			if passphrase != "" {
				cfg.Passphrase = passphrase
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			if debug {
				cfg.Debug = true
			}

			log := zerolog.Nop()
			if cfg.Debug {
				log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
					With().Timestamp().Logger()
			}

			wire, err = app.NewWire(cfg, log)
			return err
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.enigma.yaml)")
	root.PersistentFlags().StringVar(&catalogFile, "catalog", "", "extra rotor definitions file")
	root.PersistentFlags().StringVar(&codebookFile, "codebook", "", "codebook file (default codebook.yaml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for a sealed codebook")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "daemon base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log to stderr")

	root.AddCommand(encodeCmd(), decodeCmd(), rotorsCmd(), codebookCmd(), sealCmd(), fingerprintCmd())
	return root.Execute()
}

// parseDate parses a YYYY-MM-DD command argument.
func parseDate(arg string) (time.Time, error) {
	date, err := time.Parse(domain.DateLayout, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q, want YYYY-MM-DD", arg)
	}
	return date, nil
}
