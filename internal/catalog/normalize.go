package catalog

import "strings"

// Normalize converts text to the canonical matching form: lower-case,
// punctuation stripped, whitespace collapsed to single spaces. Digits are
// preserved so quantities survive normalization.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		default:
			// Everything else (punctuation, unicode, whitespace) acts as a separator.
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}
