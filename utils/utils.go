package utils

import (
	"strings"

	"github.com/tdewolff/parse/v2"
)

// AsciiLower lowers the ASCII letters of s, leaving the other runes untouched,
// as required for CSS keywords.
func AsciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			return string(parse.ToLower([]byte(s)))
		}
	}
	return s
}

// EqualFold reports whether s equals the lower case ASCII string target,
// ignoring ASCII case.
func EqualFold(s, target string) bool {
	return len(s) == len(target) && parse.EqualFold([]byte(s), []byte(target))
}

// ContainsFold is strings.Contains with ASCII case folding.
func ContainsFold(s, sub string) bool {
	return strings.Contains(AsciiLower(s), AsciiLower(sub))
}
