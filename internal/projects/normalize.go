package projects

import (
	"strings"
	"unicode"
)

// NormalizeName trims leading/trailing whitespace and collapses every
// interior run of whitespace into a single underscore. Whitespace is
// anything unicode.IsSpace reports, not just ASCII space, so pasted tabs
// and newlines normalize the same way.
func NormalizeName(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte('_')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}

	return b.String()
}
