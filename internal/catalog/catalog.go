package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"enigma/internal/domain"
)

var (
	// ErrRotorNotFound is returned when a wheel name has no catalog entry.
	ErrRotorNotFound = errors.New("rotor not found in catalog")

	// ErrInvalidRotor is returned for definitions that break the wiring or
	// notch invariants.
	ErrInvalidRotor = errors.New("invalid rotor definition")
)

// Memory is an in-memory rotor catalog, safe for concurrent readers.
type Memory struct {
	mu     sync.RWMutex
	rotors map[string]domain.RotorInfo
}

var _ domain.RotorCatalog = (*Memory)(nil)

// NewMemory builds a catalog from the given definitions, validating each.
func NewMemory(infos ...domain.RotorInfo) (*Memory, error) {
	c := &Memory{rotors: make(map[string]domain.RotorInfo, len(infos))}
	for _, info := range infos {
		if err := c.Add(info); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add validates info and inserts it, replacing any entry with the same name.
func (c *Memory) Add(info domain.RotorInfo) error {
	if err := validate(info); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotors[info.Name] = info
	return nil
}

// Rotor returns the entry for name.
func (c *Memory) Rotor(name string) (domain.RotorInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.rotors[name]
	if !ok {
		return domain.RotorInfo{}, fmt.Errorf("%q: %w", name, ErrRotorNotFound)
	}
	return info, nil
}

// List returns all entries sorted by name.
func (c *Memory) List() ([]domain.RotorInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.RotorInfo, 0, len(c.rotors))
	for _, info := range c.rotors {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func validate(info domain.RotorInfo) error {
	if info.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRotor)
	}
	if len(info.Wiring) != 26 {
		return fmt.Errorf("%w: %q wiring length %d", ErrInvalidRotor, info.Name, len(info.Wiring))
	}
	var seen [26]bool
	for i := 0; i < 26; i++ {
		c := info.Wiring[i]
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("%w: %q wiring contains %q", ErrInvalidRotor, info.Name, c)
		}
		if seen[c-'A'] {
			return fmt.Errorf("%w: %q wiring repeats %q", ErrInvalidRotor, info.Name, c)
		}
		seen[c-'A'] = true
	}
	for _, notch := range info.Notches {
		if len(notch) != 1 || notch[0] < 'A' || notch[0] > 'Z' {
			return fmt.Errorf("%w: %q notch %q", ErrInvalidRotor, info.Name, notch)
		}
	}
	return nil
}

// Builtin returns a catalog preloaded with the historical wheel set: rotors
// I through V with their ring notches and the three reflectors.
func Builtin() *Memory {
	c, err := NewMemory(
		domain.RotorInfo{Name: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notches: []string{"Q"}},
		domain.RotorInfo{Name: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notches: []string{"E"}},
		domain.RotorInfo{Name: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notches: []string{"V"}},
		domain.RotorInfo{Name: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notches: []string{"J"}},
		domain.RotorInfo{Name: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notches: []string{"Z"}},
		domain.RotorInfo{Name: "UKW-A", Wiring: "EJMZALYXVBWFCRQUONTSPIKHGD"},
		domain.RotorInfo{Name: "UKW-B", Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
		domain.RotorInfo{Name: "UKW-C", Wiring: "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
	)
	if err != nil {
		panic(err) // built-in definitions are fixed
	}
	return c
}
