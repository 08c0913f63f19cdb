package machine

import (
	"errors"
	"strings"

	"enigma/internal/domain"
)

var (
	// ErrUnencodableMessage is returned for input the machine cannot key:
	// empty strings or anything containing a non-letter.
	ErrUnencodableMessage = errors.New("message is empty or contains characters the machine cannot encode")

	// ErrIndicatorLength is returned when an indicator does not supply exactly
	// one letter per rotor.
	ErrIndicatorLength = errors.New("indicator length does not match rotor count")
)

// notchPosition locates the window position at which wiring shows notch: the
// index within the wiring sequence holding the notch letter.
func notchPosition(wiring, notch string) int {
	if notch == "" {
		return -1
	}
	return strings.IndexByte(wiring, notch[0])
}

// atNotch reports whether the rotor sits at one of its notch positions.
func atNotch(r domain.RotorSetting) bool {
	for _, notch := range r.Notches {
		if notchPosition(r.Wiring, notch) == r.Offset {
			return true
		}
	}
	return false
}

// Advance returns setting stepped by one keystroke. The rightmost rotor
// always advances; a rotor to its left advances iff its right neighbour was
// sitting at one of its own notch positions before that neighbour's step.
//
// The carry signal flows right-to-left in a single pass with one level of
// look-ahead: a rotor's notch state is read once, before its own step, and is
// not re-examined after it advances within the same keystroke. The historical
// double-step anomaly is therefore not reproduced.
func Advance(setting domain.EnigmaSetting) domain.EnigmaSetting {
	next := setting.Clone()
	step := true
	for i := len(next.Rotors) - 1; i >= 0 && step; i-- {
		step = atNotch(next.Rotors[i])
		next.Rotors[i].Offset = (next.Rotors[i].Offset + 1) % 26
	}
	return next
}

// EncodeChar sends one upper-case letter through the rotor stack, the
// reflector, and back. No stepping and no plugboard: callers advance the
// setting and substitute around the whole message.
func EncodeChar(c byte, setting domain.EnigmaSetting) byte {
	// Forward pass, rightmost rotor first.
	for i := len(setting.Rotors) - 1; i >= 0; i-- {
		r := setting.Rotors[i]
		c = r.Wiring[(Index(c)+r.Offset)%26]
	}

	c = setting.Reflector[Index(c)]

	// Reverse pass, leftmost rotor first: find the wiring position that
	// produces c, then undo the offset.
	for _, r := range setting.Rotors {
		p := strings.IndexByte(r.Wiring, c)
		c = Letter((p - r.Offset + 26) % 26)
	}
	return c
}

// Encode runs message through the machine keyed by setting.
//
// The message is upper-cased and passed through the plugboard, then each
// character is encoded after advancing the rotors (the machine steps before
// the first letter is struck), and the accumulated output goes through the
// plugboard once more. The caller's setting is left untouched.
func Encode(message string, setting domain.EnigmaSetting) (string, error) {
	if !IsEncodable(message) {
		return "", ErrUnencodableMessage
	}

	msg := Substitute(strings.ToUpper(message), setting.Plugs)
	work := setting.Clone()

	var out strings.Builder
	out.Grow(len(msg))
	for i := 0; i < len(msg); i++ {
		work = Advance(work)
		out.WriteByte(EncodeChar(msg[i], work))
	}
	return Substitute(out.String(), setting.Plugs), nil
}

// WithIndicator re-keys setting: the plugboard and reflector carry over while
// every rotor offset is recomputed as the wiring position of the matching
// indicator letter. This is how the daily base key becomes the key for one
// specific indicator or message.
func WithIndicator(setting domain.EnigmaSetting, indicator string) (domain.EnigmaSetting, error) {
	if len(indicator) != len(setting.Rotors) {
		return domain.EnigmaSetting{}, ErrIndicatorLength
	}
	ind := strings.ToUpper(indicator)
	next := setting.Clone()
	for i := range next.Rotors {
		// IndexByte is -1 for letters absent from the wiring; reduce so the
		// offset invariant holds even for such indicators.
		next.Rotors[i].Offset = (strings.IndexByte(next.Rotors[i].Wiring, ind[i]) + 26) % 26
	}
	return next, nil
}
