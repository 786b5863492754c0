package utils

import (
	"sort"
	"strings"
	"unicode"
)

// ContainsFold reports whether substr occurs in s, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MatchAliases returns the canonical keys from the alias table whose
// surface forms occur as substrings of the input. Keys are returned sorted
// so repeated calls with the same input produce the same order.
//
// Example: with "bombay" and "thane" both aliasing to "mumbai", the query
// "flats in bombay" matches the canonical key "mumbai" once.
func MatchAliases(input string, aliases map[string][]string) []string {
	in := strings.ToLower(input)

	var matched []string
	for key, forms := range aliases {
		for _, form := range forms {
			if strings.Contains(in, form) {
				matched = append(matched, key)
				break
			}
		}
	}

	sort.Strings(matched)
	return matched
}

// Tokens splits the input into lower-cased alphanumeric tokens, drops
// tokens of minLen characters or fewer, and deduplicates while preserving
// first-seen order.
func Tokens(input string, minLen int) []string {
	fields := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	var tokens []string
	for _, f := range fields {
		if len(f) <= minLen {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}
