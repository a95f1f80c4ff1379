// Package shellquote quotes strings for copy-pasteable shell hints.
package shellquote

import "strings"

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// QuoteIfNeeded quotes strings that are likely to be interpreted by a
// shell. Filter syntax is full of such characters (#, @, &, |).
func QuoteIfNeeded(s string) string {
	if strings.ContainsAny(s, "#[]()|!\"'&@ ") {
		return Quote(s)
	}
	return s
}
