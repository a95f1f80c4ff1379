// Package filter translates free-form natural language ("urgent tasks due
// today") into Todoist filter syntax ("p1 & today").
//
// The translation is a pure function over an immutable pattern catalog: no
// network calls, no knowledge of the user's actual projects or labels. The
// catalog maps recognizable phrases to filter tokens; whatever it cannot
// match degrades to a "search:" term so every non-empty input yields a
// usable filter.
package filter

import (
	"sort"
	"strings"
)

// Category groups catalog patterns by the kind of filter token they emit.
// Categories organize authorship only; they carry no weight at match time.
type Category int

const (
	CategoryPriority Category = iota
	CategoryDate
	CategoryProject
	CategoryLabel
	CategoryStatus
	CategoryDeadline
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case CategoryPriority:
		return "priority"
	case CategoryDate:
		return "date"
	case CategoryProject:
		return "project"
	case CategoryLabel:
		return "label"
	case CategoryStatus:
		return "status"
	case CategoryDeadline:
		return "deadline"
	default:
		return "unknown"
	}
}

// Pattern maps a lowercase natural-language phrase to the filter-syntax
// token emitted when the phrase is found in the input.
type Pattern struct {
	Phrase string
	Token  string
}

// categoryOrder fixes catalog iteration order. Flattening honors this order,
// which makes duplicate-phrase precedence and length-tie ordering explicit
// instead of depending on map iteration.
var categoryOrder = []Category{
	CategoryPriority,
	CategoryDate,
	CategoryProject,
	CategoryLabel,
	CategoryStatus,
	CategoryDeadline,
}

// catalog is the built-in phrase table. Project and label names are
// placeholders; the translator has no knowledge of the user's actual
// workspace.
//
// The bare "deadline before/after/on" entries exist so that a deadline
// keyword without a trailing date still produces a token. Inputs with a
// date are consumed earlier by the deadline clause extractor.
var catalog = map[Category][]Pattern{
	CategoryPriority: {
		{"highest priority", "p1"},
		{"urgent tasks", "p1"},
		{"high priority", "p2"},
		{"medium priority", "p3"},
		{"low priority", "p4"},
		{"priority 1", "p1"},
		{"priority 2", "p2"},
		{"priority 3", "p3"},
		{"priority 4", "p4"},
		{"important", "p2"},
		{"critical", "p1"},
		{"urgent", "p1"},
	},
	CategoryDate: {
		{"due this week", "7 days"},
		{"due next week", "next 7 days"},
		{"no due date", "no date"},
		{"due tomorrow", "tomorrow"},
		{"unscheduled", "no date"},
		{"due today", "today"},
		{"past due", "overdue"},
		{"this week", "7 days"},
		{"yesterday", "yesterday"},
		{"tomorrow", "tomorrow"},
		{"overdue", "overdue"},
		{"today", "today"},
		{"late", "overdue"},
	},
	CategoryProject: {
		{"work project", "#Work"},
		{"personal project", "#Personal"},
		{"shopping list", "#Shopping"},
		{"personal", "#Personal"},
		{"work", "#Work"},
		{"home", "#Home"},
	},
	CategoryLabel: {
		{"phone call", "@phone"},
		{"waiting on", "@waiting"},
		{"quick win", "@quick"},
		{"email", "@email"},
	},
	CategoryStatus: {
		{"no priority", "no priority"},
		{"recurring", "recurring"},
		{"completed", "completed"},
		{"finished", "completed"},
		{"done", "completed"},
	},
	CategoryDeadline: {
		{"deadline before", "deadline before:"},
		{"deadline after", "deadline after:"},
		{"deadline on", "deadline:"},
		{"no deadline", "no deadline"},
	},
}

// stopwords are connector and filler words dropped from residual search
// text. Never mutated at runtime.
var stopwords = map[string]struct{}{
	"and": {}, "or": {}, "tasks": {}, "task": {}, "that": {}, "are": {},
	"is": {}, "with": {}, "the": {}, "a": {}, "an": {}, "to": {}, "for": {},
	"of": {}, "by": {}, "in": {}, "on": {}, "at": {}, "as": {}, "from": {},
	"mention": {},
}

// sortedPatterns is the flattened, longest-phrase-first view of the catalog,
// built once at init and read-only afterwards. Concurrent Format calls share
// it without locking.
var sortedPatterns = flatten(catalog)

// flatten collapses the catalog into a single match list.
//
// Duplicate phrases across categories have no defined precedence in the
// catalog itself; the last-registered entry (in categoryOrder) silently
// wins. The result is sorted by descending phrase length so longer, more
// specific phrases match before their substrings; ties keep catalog order.
func flatten(cat map[Category][]Pattern) []Pattern {
	var flat []Pattern
	index := make(map[string]int)

	for _, c := range categoryOrder {
		for _, p := range cat[c] {
			if i, ok := index[p.Phrase]; ok {
				flat[i] = p // last-registered wins
				continue
			}
			index[p.Phrase] = len(flat)
			flat = append(flat, p)
		}
	}

	sort.SliceStable(flat, func(i, j int) bool {
		return len(flat[i].Phrase) > len(flat[j].Phrase)
	})
	return flat
}

// isStopword reports whether word is filtered from residual search text.
func isStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}
