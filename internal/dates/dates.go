// Package dates validates and resolves the date arguments tix sends to the
// API. Due dates go to the server as free text (Todoist parses those), but
// deadlines must be exact YYYY-MM-DD dates, so they are checked locally.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the wire format for deadline dates.
const DateLayout = "2006-01-02"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse(DateLayout, s)
}

// ResolveDeadline turns a deadline argument into the YYYY-MM-DD form the
// API expects. Accepts an absolute date or the shorthands "today" and
// "tomorrow"; empty stays empty (no deadline).
func ResolveDeadline(arg string, now time.Time) (string, error) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	switch arg {
	case "":
		return "", nil
	case "today":
		return now.Format(DateLayout), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(DateLayout), nil
	}

	if !IsValidDate(arg) {
		return "", fmt.Errorf("invalid deadline %q, use YYYY-MM-DD or today/tomorrow", arg)
	}
	return arg, nil
}
