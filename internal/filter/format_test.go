package filter

import (
	"strings"
	"testing"
)

func TestFormatScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "priority and date phrases",
			input: "urgent tasks due today",
			want:  "p1 & today",
		},
		{
			name:  "search term with date phrase",
			input: "tasks that mention paint and are due this week",
			want:  "7 days & search: paint",
		},
		{
			name:  "already formatted passes through",
			input: "#Work & p1",
			want:  "#Work & p1",
		},
		{
			name:  "unmatched word becomes search",
			input: "paint",
			want:  "search: paint",
		},
		{
			name:  "deadline clause keeps capitalization",
			input: "deadline before Sept 5 2025",
			want:  "deadline before: Sept 5 2025",
		},
		{
			name:  "project phrase with stopword residue",
			input: "work project tasks",
			want:  "#Work",
		},
		{
			name:  "substring collision is preserved behavior",
			input: "network tasks",
			want:  "#Work & search: net",
		},
		{
			name:  "high priority with overdue",
			input: "high priority overdue tasks",
			want:  "p2 & overdue",
		},
		{
			name:  "keyword mixed with other words is translated",
			input: "today maybe",
			want:  "today & search: maybe",
		},
		{
			name:  "all stopwords fall back to raw search",
			input: "and the",
			want:  "search: and the",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \t ",
			want:  "",
		},
		{
			name:  "leading and trailing space trimmed on pass-through",
			input: "  #Work & p1  ",
			want:  "#Work & p1",
		},
		{
			name:  "existing search prefix kept as-is",
			input: "search: paint",
			want:  "search: paint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.input)
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatExamplesMatch(t *testing.T) {
	// The documented examples are literal values; the translator must keep
	// producing them.
	for _, ex := range Examples() {
		if got := Format(ex.Input); got != ex.Output {
			t.Errorf("Format(%q) = %q, want documented %q", ex.Input, got, ex.Output)
		}
	}
}

func TestFormatStableOnOwnOutput(t *testing.T) {
	// Once an output satisfies the syntax detector (or is a pure search
	// term), re-formatting it is a no-op.
	for _, ex := range Examples() {
		out := Format(ex.Input)
		if again := Format(out); again != out {
			t.Errorf("Format(%q) = %q, not stable (got %q)", out, again, out)
		}
	}
}

func TestFormatPassThroughInvariant(t *testing.T) {
	// Any input carrying a strong syntax indicator comes back trimmed but
	// otherwise untouched.
	inputs := []string{
		"#Work",
		"@waiting & p2",
		"p3",
		"today | overdue",
		"assigned by: me",
		"due before: May 5",
		"due after: June 1",
		"  overdue  ",
		"no priority",
	}
	for _, input := range inputs {
		want := strings.TrimSpace(input)
		if got := Format(input); got != want {
			t.Errorf("Format(%q) = %q, want pass-through %q", input, got, want)
		}
	}
}

func TestFormatDeduplicatesTokens(t *testing.T) {
	got := Format("urgent critical tasks")
	if got != "p1" {
		t.Errorf("Format(\"urgent critical tasks\") = %q, want %q", got, "p1")
	}
}

func TestFormatNeverEmptyForNonEmptyInput(t *testing.T) {
	inputs := []string{
		"a",
		"and",
		"zzz",
		"urgent",
		"deadline before tomorrow",
		"completely unrelated words here",
	}
	for _, input := range inputs {
		if got := Format(input); got == "" {
			t.Errorf("Format(%q) returned empty output", input)
		}
	}
}

func TestFormatNoDuplicateTokensInOutput(t *testing.T) {
	inputs := []string{
		"urgent critical important tasks",
		"done finished completed stuff",
		"late overdue past due",
	}
	for _, input := range inputs {
		out := Format(input)
		seen := map[string]bool{}
		for _, tok := range strings.Split(out, " & ") {
			if seen[tok] {
				t.Errorf("Format(%q) = %q contains duplicate token %q", input, out, tok)
			}
			seen[tok] = true
		}
	}
}

func TestFormatWordBoundaryStrategy(t *testing.T) {
	tr := &Translator{Matching: MatchWordBoundary}

	tests := []struct {
		input string
		want  string
	}{
		// No substring collision under word-boundary matching.
		{"network tasks", "search: network"},
		{"work tasks", "#Work"},
		{"urgent tasks due today", "p1 & today"},
	}

	for _, tt := range tests {
		if got := tr.Format(tt.input); got != tt.want {
			t.Errorf("word-boundary Format(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFilterResidual(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"tasks that are for the", ""},
		{"paint", "paint"},
		{"  paint   brushes  ", "paint brushes"},
		{"the paint and brushes", "paint brushes"},
	}
	for _, tt := range tests {
		if got := filterResidual(tt.input); got != tt.want {
			t.Errorf("filterResidual(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
