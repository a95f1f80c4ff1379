package filter

import (
	"regexp"
	"strings"
)

// MatchStrategy selects how catalog phrases are located in the input.
type MatchStrategy int

const (
	// MatchSubstring matches phrases anywhere in the buffer, including
	// inside larger words ("work" matches inside "network"). This is the
	// historical behavior and the default.
	MatchSubstring MatchStrategy = iota

	// MatchWordBoundary only matches phrases delimited by word boundaries.
	MatchWordBoundary
)

// Translator converts natural-language task requests into filter syntax.
// The zero value uses substring matching; translators are stateless and
// safe for concurrent use.
type Translator struct {
	Matching MatchStrategy
}

var defaultTranslator = &Translator{}

// Format translates query into filter syntax using the default translator.
func Format(query string) string {
	return defaultTranslator.Format(query)
}

// Format translates query into filter syntax. It is total over its input:
// it never fails, and only an empty (or all-whitespace) query produces an
// empty result. Inputs that already look like filter syntax pass through
// unchanged.
func (t *Translator) Format(query string) string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return ""
	}
	if isAlreadyFormatted(trimmed) {
		return trimmed
	}

	// Deadline clauses are carved out of the case-preserved input first:
	// their free text keeps the user's capitalization, and the generic
	// catalog would otherwise absorb the "deadline before" prefix without
	// the trailing date.
	tokens, rest := extractDeadlines(trimmed)

	// The working buffer for phrase matching is a lowercase copy local to
	// this call. Matched phrases are consumed (first occurrence only) so
	// they cannot match twice or leak into the search term.
	buf := strings.ToLower(rest)
	for _, p := range sortedPatterns {
		idx := t.find(buf, p.Phrase)
		if idx < 0 {
			continue
		}
		tokens = append(tokens, p.Token)
		buf = buf[:idx] + buf[idx+len(p.Phrase):]
	}

	if residual := filterResidual(buf); residual != "" {
		if strings.HasPrefix(residual, "search:") {
			tokens = append(tokens, residual)
		} else {
			tokens = append(tokens, "search: "+residual)
		}
	}

	// Nothing matched and nothing was left over (the input was all
	// stopwords): fall back to searching for the raw input so the result
	// is still a usable, non-empty filter.
	if len(tokens) == 0 {
		tokens = append(tokens, "search: "+trimmed)
	}

	return strings.Join(dedupe(tokens), " & ")
}

// find returns the index of the first match of phrase in buf under the
// translator's matching strategy, or -1.
func (t *Translator) find(buf, phrase string) int {
	if t.Matching == MatchWordBoundary {
		if loc := boundaryPatterns[phrase].FindStringIndex(buf); loc != nil {
			return loc[0]
		}
		return -1
	}
	return strings.Index(buf, phrase)
}

// boundaryPatterns holds precompiled word-boundary regexps for every
// catalog phrase, built once so Format stays allocation-light and
// lock-free under concurrency.
var boundaryPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(sortedPatterns))
	for _, p := range sortedPatterns {
		m[p.Phrase] = regexp.MustCompile(`\b` + regexp.QuoteMeta(p.Phrase) + `\b`)
	}
	return m
}()

// filterResidual splits the leftover buffer on whitespace, drops stopwords
// and empty tokens, and rejoins with single spaces.
func filterResidual(buf string) string {
	var kept []string
	for _, word := range strings.Fields(buf) {
		if isStopword(word) {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

// dedupe removes exact-duplicate tokens, preserving first-seen order.
func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
