package schema

import "strings"

// SanitizeName drops every character of raw that is not an ASCII letter or
// digit. The result may be empty.
func SanitizeName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for i := range len(raw) {
		if c := raw[i]; isAlphanumeric(c) {
			b.WriteByte(c)
		}
	}

	return b.String()
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
