package railway

import "strings"

// Slug derives a stable, URL-safe identifier from a display name: lowercase,
// punctuation stripped, word separators collapsed to single hyphens. It is a
// pure function, so equal names always produce equal ids.
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '-', r == '_', r == '/':
			pendingHyphen = true
		default:
			// Remaining punctuation ("St. Mary's") is dropped outright.
		}
	}

	return b.String()
}
