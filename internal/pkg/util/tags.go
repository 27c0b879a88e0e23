package util

import (
	"strings"
	"unicode"
)

// NormalizeTags splits a comma separated tag string and lowercases each
// token, keeping only letters and digits. Tokens that strip down to the
// empty string are kept, as are duplicates; callers store the result
// verbatim.
func NormalizeTags(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		var b strings.Builder
		for _, r := range strings.TrimSpace(part) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToLower(r))
			}
		}
		tags = append(tags, b.String())
	}

	return tags
}
