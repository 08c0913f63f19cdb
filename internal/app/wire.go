package app

import (
	"github.com/rs/zerolog"

	"enigma/internal/api"
	"enigma/internal/catalog"
	"enigma/internal/codebook"
	"enigma/internal/domain"
	ciphersvc "enigma/internal/services/cipher"
	settingsvc "enigma/internal/services/setting"
)

// Wire bundles the catalog, codebook and services for the CLI and daemon.
type Wire struct {
	Catalog  domain.RotorCatalog
	Codebook domain.CodebookStore
	Settings domain.SettingService
	Cipher   domain.CipherService
	Log      zerolog.Logger
}

// NewWire constructs the dependency graph from cfg.
//
// With APIURL set the catalog and codebook are served by a remote daemon;
// otherwise the built-in catalog (optionally extended from CatalogFile) and
// a local codebook file are used.
func NewWire(cfg Config, log zerolog.Logger) (*Wire, error) {
	var (
		cat domain.RotorCatalog
		cb  domain.CodebookStore
	)
	if cfg.APIURL != "" {
		client := api.NewClient(cfg.APIURL)
		cat, cb = client, client
	} else {
		mem := catalog.Builtin()
		if cfg.CatalogFile != "" {
			if err := mem.LoadFile(cfg.CatalogFile); err != nil {
				return nil, err
			}
		}
		cat = mem
		cb = codebook.NewFile(cfg.CodebookFile, cfg.Passphrase)
	}

	settings := settingsvc.New(cat, cb)
	ciph := ciphersvc.New(settings, log)

	return &Wire{
		Catalog:  cat,
		Codebook: cb,
		Settings: settings,
		Cipher:   ciph,
		Log:      log,
	}, nil
}
