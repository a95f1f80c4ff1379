package filter

import (
	"regexp"
	"strings"
)

// strongIndicators are regular expressions that only appear in inputs that
// are already written in filter syntax. Any hit means the input passes
// through untouched.
var strongIndicators = []*regexp.Regexp{
	regexp.MustCompile(`#\w+`),        // project marker
	regexp.MustCompile(`@\w+`),        // label marker
	regexp.MustCompile(`\bp[1-4]\b`),  // priority token
	regexp.MustCompile(`[&|]`),        // conjunction / disjunction
	regexp.MustCompile(`assigned by:`),
	regexp.MustCompile(`before:`),
	regexp.MustCompile(`after:`),
}

// syntaxKeywords are single-concept filter queries. They count as already
// formatted only when they make up the entire input; mixed with other words
// they go through normal translation.
var syntaxKeywords = map[string]struct{}{
	"today":       {},
	"tomorrow":    {},
	"overdue":     {},
	"yesterday":   {},
	"no date":     {},
	"no priority": {},
	"completed":   {},
}

// isAlreadyFormatted reports whether input is already valid filter syntax
// and must be passed through unchanged. A false positive returns the
// user's text verbatim, which the API treats as a filter anyway.
func isAlreadyFormatted(input string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, re := range strongIndicators {
		if re.MatchString(lower) {
			return true
		}
	}
	_, ok := syntaxKeywords[lower]
	return ok
}
