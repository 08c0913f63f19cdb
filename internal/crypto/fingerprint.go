package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"enigma/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a machine setting.
//
// Two operators can read their fingerprints to each other to confirm they
// keyed the same rotors, offsets, plugboard and reflector without revealing
// any of them. It hashes a canonical rendering with SHA-256 and truncates to
// 10 bytes (20 hex chars).
func Fingerprint(setting domain.EnigmaSetting) string {
	var b strings.Builder
	for _, r := range setting.Rotors {
		b.WriteString(r.Wiring)
		b.WriteByte('|')
		b.WriteString(strings.Join(r.Notches, ","))
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(r.Offset))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Join(setting.Plugs, ","))
	b.WriteByte('\n')
	b.WriteString(setting.Reflector)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:10])
}
