package filter

import "testing"

func TestSortedPatternsLongestFirst(t *testing.T) {
	if len(sortedPatterns) == 0 {
		t.Fatal("sortedPatterns is empty")
	}
	for i := 1; i < len(sortedPatterns); i++ {
		prev, cur := sortedPatterns[i-1], sortedPatterns[i]
		if len(cur.Phrase) > len(prev.Phrase) {
			t.Errorf("pattern %q (len %d) sorted after shorter %q (len %d)",
				cur.Phrase, len(cur.Phrase), prev.Phrase, len(prev.Phrase))
		}
	}
}

func TestSortedPatternsTiesKeepCatalogOrder(t *testing.T) {
	// "urgent tasks" (priority) and "work project" (project) are the same
	// length; priority registers first, so it must sort first.
	var urgentIdx, workIdx = -1, -1
	for i, p := range sortedPatterns {
		switch p.Phrase {
		case "urgent tasks":
			urgentIdx = i
		case "work project":
			workIdx = i
		}
	}
	if urgentIdx < 0 || workIdx < 0 {
		t.Fatal("expected catalog phrases missing from sortedPatterns")
	}
	if urgentIdx > workIdx {
		t.Errorf("tie broken against catalog order: %q at %d, %q at %d",
			"urgent tasks", urgentIdx, "work project", workIdx)
	}
}

func TestFlattenDuplicatePhraseLastWins(t *testing.T) {
	// Duplicate phrases across categories have no defined precedence in
	// the catalog; flatten silently keeps the last-registered entry.
	cat := map[Category][]Pattern{
		CategoryPriority: {{"soon", "p1"}},
		CategoryDate:     {{"soon", "3 days"}},
	}

	flat := flatten(cat)
	if len(flat) != 1 {
		t.Fatalf("flatten produced %d entries, want 1", len(flat))
	}
	if flat[0].Token != "3 days" {
		t.Errorf("duplicate phrase resolved to %q, want last-registered %q",
			flat[0].Token, "3 days")
	}
}

func TestFlattenDoesNotMutateCatalog(t *testing.T) {
	before := len(catalog[CategoryPriority])
	_ = flatten(catalog)
	if len(catalog[CategoryPriority]) != before {
		t.Error("flatten mutated the catalog")
	}
}

func TestIsStopword(t *testing.T) {
	for _, word := range []string{"and", "tasks", "the", "mention", "AND"} {
		if !isStopword(word) {
			t.Errorf("isStopword(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"paint", "urgent", ""} {
		if isStopword(word) {
			t.Errorf("isStopword(%q) = true, want false", word)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryPriority, "priority"},
		{CategoryDate, "date"},
		{CategoryProject, "project"},
		{CategoryLabel, "label"},
		{CategoryStatus, "status"},
		{CategoryDeadline, "deadline"},
		{Category(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}
