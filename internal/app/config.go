package app

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config holds runtime wiring options for the CLI and the daemon.
//
// Values come from, in order of precedence: ENIGMA_* environment variables,
// an explicit --config file, a .enigma.yaml in the home directory or the
// working directory, and finally the defaults below.
type Config struct {
	CatalogFile  string `mapstructure:"catalog_file"`  // optional extra rotor definitions
	CodebookFile string `mapstructure:"codebook_file"` // daily settings, plain or sealed
	Passphrase   string `mapstructure:"passphrase"`    // unlocks a sealed codebook
	APIURL       string `mapstructure:"api_url"`       // when set, catalog and codebook come from a daemon
	ListenAddr   string `mapstructure:"listen_addr"`   // daemon bind address
	Debug        bool   `mapstructure:"debug"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		CodebookFile: "codebook.yaml",
		ListenAddr:   ":8080",
	}
}

// Load reads configuration from path, or from the default locations when
// path is empty. A missing default config file is not an error.
func Load(path string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("catalog_file", def.CatalogFile)
	v.SetDefault("codebook_file", def.CodebookFile)
	v.SetDefault("passphrase", def.Passphrase)
	v.SetDefault("api_url", def.APIURL)
	v.SetDefault("listen_addr", def.ListenAddr)
	v.SetDefault("debug", def.Debug)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".enigma")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ENIGMA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
