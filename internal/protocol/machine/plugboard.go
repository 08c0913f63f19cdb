package machine

import "strings"

// Substitute applies the plugboard to message. Each character is matched
// against the pairs in order; the first pair containing it swaps it for its
// partner, a character in no pair passes through unchanged. Pairs that are not
// exactly two characters long are skipped, not rejected. Matching is
// case-sensitive against the exact pair characters, so callers upper-case the
// message first.
//
// The operation is its own inverse for any pair list in which each letter
// appears at most once.
func Substitute(message string, plugs []string) string {
	if message == "" {
		return ""
	}
	var out strings.Builder
	out.Grow(len(message))
	for i := 0; i < len(message); i++ {
		c := message[i]
		for _, plug := range plugs {
			if len(plug) != 2 {
				continue
			}
			if c == plug[0] {
				c = plug[1]
				break
			}
			if c == plug[1] {
				c = plug[0]
				break
			}
		}
		out.WriteByte(c)
	}
	return out.String()
}
