package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a human-readable title into a URL-safe identifier.
// It never fails; a symbol-only input yields an empty slug, which callers
// treat as an ordinary candidate.
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)

	// Word separators become hyphens before stripping everything else,
	// so "Eau de Parfum" keeps its word boundaries.
	hyphenated := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '_', '/', '.':
			return '-'
		}
		return r
	}, lower)

	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")
	normalized := slugHyphenRuns.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}
