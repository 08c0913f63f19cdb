package domain

// DateLayout is the wire and codebook format for daily setting dates.
const DateLayout = "2006-01-02"

// RotorInfo is an immutable catalog entry describing one wheel.
//
// Wiring is a 26-letter permutation of the alphabet: position i holds the
// output letter produced when the input is the letter at window position i.
// Notches lists the letters that, when showing in the window, make the next
// rotor leftward step on the following keystroke. Reflectors are catalogued
// as rotors with an involutive wiring and no notches.
type RotorInfo struct {
	Name    string   `json:"name" mapstructure:"name"`
	Wiring  string   `json:"wiring" mapstructure:"wiring"`
	Notches []string `json:"notches,omitempty" mapstructure:"notches"`
}

// RotorSetting is the per-run state of one wheel: its wiring and notch set
// from the catalog plus the current offset, always reduced modulo 26.
type RotorSetting struct {
	Wiring  string
	Notches []string
	Offset  int
}

// EnigmaSetting is the machine's full key state: the ordered rotor stack
// (index 0 is the leftmost, slowest wheel; the last entry is the rightmost
// wheel that steps on every keystroke), the plugboard pairs and the
// reflector wiring.
//
// The engine treats a setting as a value: stepping and re-keying produce new
// snapshots, so a base daily setting can key any number of independent
// messages concurrently.
type EnigmaSetting struct {
	Rotors    []RotorSetting
	Plugs     []string
	Reflector string
}

// Clone returns a setting with an independent rotor slice so the caller's
// offsets are untouched by an encode run.
func (s EnigmaSetting) Clone() EnigmaSetting {
	rotors := make([]RotorSetting, len(s.Rotors))
	copy(rotors, s.Rotors)
	return EnigmaSetting{Rotors: rotors, Plugs: s.Plugs, Reflector: s.Reflector}
}

// DaySetting is one codebook line: the shared daily key as distributed to
// operators. Rotor and reflector fields name catalog entries; Indicator holds
// one starting letter per rotor.
type DaySetting struct {
	Date      string   `json:"date" mapstructure:"date"`
	Rotors    []string `json:"rotors" mapstructure:"rotors"`
	Indicator string   `json:"indicator" mapstructure:"indicator"`
	Plugs     []string `json:"plugs,omitempty" mapstructure:"plugs"`
	Reflector string   `json:"reflector" mapstructure:"reflector"`
}
