package machine

// Index maps a letter to its 0-based alphabet position, A (or a) being 0 and
// Z being 25. Behaviour for non-letters is undefined; callers validate input
// with IsEncodable first.
func Index(c byte) int {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return int(c - 'A')
}

// Letter is the inverse of Index for in-range values.
func Letter(i int) byte { return byte('A' + i) }

// IsEncodable reports whether the machine can handle message: it must be
// non-empty and consist solely of ASCII letters. The empty string carries no
// keying information and is rejected.
func IsEncodable(message string) bool {
	if message == "" {
		return false
	}
	for i := 0; i < len(message); i++ {
		c := message[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
