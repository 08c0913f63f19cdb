package catalog

import (
	"fmt"

	"github.com/spf13/viper"

	"enigma/internal/domain"
)

// LoadFile reads additional rotor definitions from a YAML file of the form
//
//	rotors:
//	  - name: VI
//	    wiring: JPGVOUMFYQBENHZRDKASXLICTW
//	    notches: [Z, M]
//
// and merges them into the catalog, overriding same-named entries.
func (c *Memory) LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read rotor file %s: %w", path, err)
	}

	var infos []domain.RotorInfo
	if err := v.UnmarshalKey("rotors", &infos); err != nil {
		return fmt.Errorf("parse rotor file %s: %w", path, err)
	}
	for _, info := range infos {
		if err := c.Add(info); err != nil {
			return fmt.Errorf("rotor file %s: %w", path, err)
		}
	}
	return nil
}
