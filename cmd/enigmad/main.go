package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"enigma/internal/api"
	"enigma/internal/app"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default ~/.enigma.yaml)")
	listen := flag.String("listen", "", "bind address (overrides config)")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if !*debug {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg, err := app.Load(*cfgFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *listen != "" {
		cfg.ListenAddr = *listen
	}
	// The daemon is the authority; it never chains to another daemon.
	cfg.APIURL = ""

	wire, err := app.NewWire(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("wire dependencies")
	}

	srv := api.NewServer(wire.Catalog, wire.Codebook, wire.Cipher, log)
	if err := srv.Start(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
