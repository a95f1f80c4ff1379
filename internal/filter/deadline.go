package filter

import (
	"regexp"
	"strings"
)

// deadlineRule extracts the free text following one fixed deadline prefix.
type deadlineRule struct {
	prefix *regexp.Regexp
	emit   string
}

// Rules are ordered and independent: all three are attempted, so an input
// chaining two different deadline phrasings yields two tokens.
var deadlineRules = []deadlineRule{
	{regexp.MustCompile(`(?i)\bdeadline\s+before\s+`), "deadline before:"},
	{regexp.MustCompile(`(?i)\bdeadline\s+after\s+`), "deadline after:"},
	{regexp.MustCompile(`(?i)\bdeadline\s+on\s+`), "deadline:"},
}

// clauseStop marks where a deadline clause's free text ends: a connector,
// an explicit operator, or the start of another deadline clause.
var clauseStop = regexp.MustCompile(`(?i),|&|\||\bdeadline\b`)

// extractDeadlines pulls explicit deadline clauses out of buf before generic
// phrase matching runs. The full matched substring (prefix plus captured
// text) is removed from the returned buffer so the bare catalog phrases
// ("deadline before" etc.) cannot also absorb it, and the date text cannot
// leak into residual search terms.
//
// buf must be the case-preserved input: the captured text is emitted with
// the user's original capitalization.
func extractDeadlines(buf string) (tokens []string, rest string) {
	for _, rule := range deadlineRules {
		loc := rule.prefix.FindStringIndex(buf)
		if loc == nil {
			continue
		}

		tail := buf[loc[1]:]
		end := len(tail)
		if stop := clauseStop.FindStringIndex(tail); stop != nil {
			end = stop[0]
		}

		clause := strings.TrimSpace(tail[:end])
		if clause == "" {
			// Bare prefix with no date; leave it for the catalog.
			continue
		}

		tokens = append(tokens, rule.emit+" "+clause)
		buf = buf[:loc[0]] + tail[end:]
	}
	return tokens, buf
}
