package setting

import (
	"fmt"
	"time"

	"enigma/internal/domain"
	"enigma/internal/protocol/machine"
)

// Service builds EnigmaSettings from the daily codebook.
//
// High-level flow:
//   - Look up the day's codebook entry.
//   - Resolve each named rotor and the reflector through the catalog.
//   - Key the rotor offsets from the day indicator.
//
// Catalog and codebook failures (RotorNotFound, SettingNotFound) propagate
// unchanged so callers can map them to their own surfaces.
type Service struct {
	catalog  domain.RotorCatalog
	codebook domain.CodebookStore
}

// New constructs a Setting Service over the given catalog and codebook.
func New(catalog domain.RotorCatalog, codebook domain.CodebookStore) *Service {
	return &Service{catalog: catalog, codebook: codebook}
}

// ForDate returns the machine setting for the given day.
func (s *Service) ForDate(date time.Time) (domain.EnigmaSetting, error) {
	ds, err := s.codebook.Setting(date)
	if err != nil {
		return domain.EnigmaSetting{}, err
	}
	return s.Resolve(ds)
}

// Resolve turns one codebook entry into a keyed machine setting.
func (s *Service) Resolve(ds domain.DaySetting) (domain.EnigmaSetting, error) {
	rotors := make([]domain.RotorSetting, 0, len(ds.Rotors))
	for _, name := range ds.Rotors {
		info, err := s.catalog.Rotor(name)
		if err != nil {
			return domain.EnigmaSetting{}, err
		}
		rotors = append(rotors, domain.RotorSetting{Wiring: info.Wiring, Notches: info.Notches})
	}

	reflector, err := s.catalog.Rotor(ds.Reflector)
	if err != nil {
		return domain.EnigmaSetting{}, err
	}

	base := domain.EnigmaSetting{
		Rotors:    rotors,
		Plugs:     ds.Plugs,
		Reflector: reflector.Wiring,
	}
	keyed, err := machine.WithIndicator(base, ds.Indicator)
	if err != nil {
		return domain.EnigmaSetting{}, fmt.Errorf("day indicator %q: %w", ds.Indicator, err)
	}
	return keyed, nil
}

// Compile-time assertion that Service implements domain.SettingService.
var _ domain.SettingService = (*Service)(nil)
